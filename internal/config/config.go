package config

import (
	"os"

	"github.com/go-yaml/yaml"

	"github.com/atelierworks/atelier"
)

type Config struct {
	NodeInfo NodeInfo `yaml:"nodeInfo"`
	Server   Server   `yaml:"server"`
}

type NodeInfo struct {
	FQDN       string `yaml:"fqdn"`
	PrivateKey string `yaml:"privatekey"`

	// ---
	ASID string
}

type Server struct {
	PostgresDsn    string `yaml:"postgresDsn"`
	RedisAddr      string `yaml:"redisAddr"`
	RedisPassword  string `yaml:"redisPassword"`
	RedisDB        int    `yaml:"redisDB"`
	MemcachedAddr  string `yaml:"memcachedAddr"`
	WalletEndpoint string `yaml:"walletEndpoint"`
	EnableTrace    bool   `yaml:"enableTrace"`
	TraceEndpoint  string `yaml:"traceEndpoint"`
}

func Load(path string) (Config, error) {

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}

	var config Config
	err = yaml.NewDecoder(file).Decode(&config)
	if err != nil {
		return Config{}, err
	}

	asid, err := atelier.PrivKeyToAddr(config.NodeInfo.PrivateKey, atelier.IDPrefixService)
	if err != nil {
		return Config{}, err
	}

	config.NodeInfo.ASID = asid

	return config, nil
}
