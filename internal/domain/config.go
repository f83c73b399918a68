package domain

// Config is the node identity shared with the request path. ASID is
// derived from PrivateKey at load time.
type Config struct {
	FQDN       string `yaml:"fqdn"`
	PrivateKey string `yaml:"privatekey"`
	ASID       string `yaml:"asid"`
}

const (
	RequesterIdCtxKey = "at-requesterId"
)
