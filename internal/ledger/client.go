package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/veecerts/veevault/internal/config"
	"github.com/veecerts/veevault/internal/identity"
)

// BalanceClient resolves account balances on the external ledger. The
// vault holds no balance state of its own; every call goes over the
// wire.
type BalanceClient interface {
	AccountBalance(ctx context.Context, account identity.Principal) (uint64, error)
}

// Client is the HTTP implementation of BalanceClient.
type Client struct {
	baseURL        string
	serviceAccount identity.Principal
	httpClient     *http.Client
}

// NewClient builds a ledger client from configuration.
func NewClient(cfg config.LedgerConfig) *Client {
	return &Client{
		baseURL:        cfg.BaseURL,
		serviceAccount: identity.Principal(cfg.ServiceAccount),
		httpClient:     &http.Client{Timeout: cfg.Timeout},
	}
}

// AccountBalance fetches the balance of an arbitrary account.
func (c *Client) AccountBalance(ctx context.Context, account identity.Principal) (uint64, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/balance", c.baseURL, url.PathEscape(string(account)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("build ledger request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("query ledger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ledger responded %d for account %s", resp.StatusCode, account)
	}

	var body struct {
		Balance uint64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode ledger response: %w", err)
	}
	return body.Balance, nil
}

// ServiceBalance fetches the balance of the configured service account.
func (c *Client) ServiceBalance(ctx context.Context) (uint64, error) {
	return c.AccountBalance(ctx, c.serviceAccount)
}
