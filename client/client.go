package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/atelierworks/atelier"
	"github.com/atelierworks/atelier/internal/domain"
	"github.com/atelierworks/atelier/jwt"
)

const (
	defaultTimeout = 3 * time.Second
	tokenLifetime  = 5 * time.Minute
	balanceTTL     = 10 * time.Second
)

// Client talks to the wallet service holding external balances. Requests
// are authenticated with a short lived service JWT signed by the node key.
type Client struct {
	client   *http.Client
	cache    *cache.Cache
	endpoint string
	asid     string
	privkey  string
}

func New(endpoint string, asid string, privkey string) *Client {
	httpClient := http.Client{
		Timeout: defaultTimeout,
	}

	return &Client{
		client:   &httpClient,
		cache:    cache.New(10*time.Minute, 15*time.Minute),
		endpoint: endpoint,
		asid:     asid,
		privkey:  privkey,
	}
}

func (c *Client) token() (string, error) {
	x, found := c.cache.Get("service-token")
	if found {
		return x.(string), nil
	}

	now := time.Now()
	token, err := jwt.Create(jwt.Claims{
		Issuer:         c.asid,
		Subject:        "atelier-wallet",
		Audience:       c.endpoint,
		IssuedAt:       strconv.FormatInt(now.Unix(), 10),
		ExpirationTime: strconv.FormatInt(now.Add(tokenLifetime).Unix(), 10),
	}, c.privkey)
	if err != nil {
		return "", fmt.Errorf("failed to create service token: %v", err)
	}

	// renew before the wallet side rejects it
	c.cache.Set("service-token", token, tokenLifetime-time.Minute)

	return token, nil
}

type transferRequest struct {
	Holder string `json:"holder"`
	Amount uint64 `json:"amount"`
}

type balanceResponse struct {
	Holder  string `json:"holder"`
	Balance uint64 `json:"balance"`
}

func (c *Client) transfer(ctx context.Context, path string, holder string, amount uint64) error {

	if !atelier.IsArtID(holder) {
		return fmt.Errorf("invalid holder id: %s", holder)
	}

	body, err := json.Marshal(transferRequest{Holder: holder, Amount: amount})
	if err != nil {
		return err
	}

	url := "https://" + c.endpoint + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	token, err := c.token()
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		c.cache.Delete("balance:" + holder)
		return nil
	case http.StatusPaymentRequired:
		return domain.InsufficientFundsError{Source: "wallet"}
	default:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
}

func (c *Client) Debit(ctx context.Context, holder string, amount uint64) error {
	return c.transfer(ctx, "/transfer/debit", holder, amount)
}

func (c *Client) Credit(ctx context.Context, holder string, amount uint64) error {
	return c.transfer(ctx, "/transfer/credit", holder, amount)
}

func (c *Client) Balance(ctx context.Context, holder string) (uint64, error) {

	cacheKey := "balance:" + holder
	x, found := c.cache.Get(cacheKey)
	if found {
		return x.(uint64), nil
	}

	url := "https://" + c.endpoint + "/balance/" + holder
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %v", err)
	}

	token, err := c.token()
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to perform request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var balance balanceResponse
	err = json.NewDecoder(resp.Body).Decode(&balance)
	if err != nil {
		return 0, fmt.Errorf("failed to decode response: %v", err)
	}

	c.cache.Set(cacheKey, balance.Balance, balanceTTL)

	return balance.Balance, nil
}
