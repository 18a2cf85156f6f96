// Package wallet is the HTTP client for the external custody service. The
// core never credits balances from here; crediting is driven only by admin
// approval of self-reported deposits.
package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client talks to the custody wallet service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// masterAddress is returned for deposits when no service URL is
	// configured, mirroring a single platform-wide custody address.
	masterAddress string
}

// NewClient creates a custody client. baseURL may be empty, in which case
// GetDepositAddress serves the configured master address and Withdraw
// fails.
func NewClient(baseURL, apiKey, masterAddress string) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		masterAddress: masterAddress,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type depositAddressResponse struct {
	Address string `json:"address"`
}

type withdrawRequest struct {
	Asset   string  `json:"asset"`
	Amount  float64 `json:"amount"`
	Address string  `json:"address"`
	Network string  `json:"network"`
}

type withdrawResponse struct {
	Receipt string `json:"receipt"`
}

// GetDepositAddress returns the platform deposit address for an asset on
// the given rail.
func (c *Client) GetDepositAddress(ctx context.Context, asset, network string) (string, error) {
	if c.baseURL == "" {
		if c.masterAddress == "" {
			return "", errors.New("wallet: deposit address not configured")
		}
		return c.masterAddress, nil
	}

	endpoint := fmt.Sprintf("/v1/deposit-address?asset=%s&network=%s",
		url.QueryEscape(asset), url.QueryEscape(network))

	body, err := c.doRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	var resp depositAddressResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("wallet: decode deposit address: %w", err)
	}
	if resp.Address == "" {
		return "", errors.New("wallet: service returned empty address")
	}
	return resp.Address, nil
}

// Withdraw asks the custody service to pay out and returns its receipt.
func (c *Client) Withdraw(ctx context.Context, asset string, amount float64, address, network string) (string, error) {
	if c.baseURL == "" {
		return "", errors.New("wallet: withdrawal service not configured")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/v1/withdrawals", withdrawRequest{
		Asset:   asset,
		Amount:  amount,
		Address: address,
		Network: network,
	})
	if err != nil {
		return "", err
	}

	var resp withdrawResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("wallet: decode withdrawal receipt: %w", err)
	}
	return resp.Receipt, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("wallet: marshal request body: %w", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("wallet: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallet: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wallet: read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("wallet: api error: %s (status: %d)", string(respBody), resp.StatusCode)
	}

	return respBody, nil
}
