package entropy

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

const (
	randomOrgURL = "https://api.random.org/json-rpc/4/invoke"
	batchSize    = 100
	lowWater     = 10
)

// Client draws true random fractions from random.org in batches,
// keeping a local pool. Any API trouble falls back to crypto/rand, so
// a Float call never fails.
type Client struct {
	apiKey string
	http   *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewClient creates a random.org-backed Source. Returns nil when no
// API key is configured; a nil Client still serves crypto floats.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

// Float returns a random float64 in [0, 1).
func (c *Client) Float() float64 {
	if c == nil {
		return cryptoRandFloat()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < lowWater {
		if batch, err := c.fetch(); err != nil {
			slog.Debug("random.org refill failed", "error", err)
		} else {
			c.pool = append(c.pool, batch...)
		}
	}
	if len(c.pool) == 0 {
		return cryptoRandFloat()
	}

	v := c.pool[0]
	c.pool = c.pool[1:]
	return v
}

func (c *Client) fetch() ([]float64, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateDecimalFractions",
		"params": map[string]any{
			"apiKey":        c.apiKey,
			"n":             batchSize,
			"decimalPlaces": 6,
		},
		"id": 1,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Post(randomOrgURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result struct {
		Result struct {
			Random struct {
				Data []float64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, &apiError{result.Error.Message}
	}
	return result.Result.Random.Data, nil
}

type apiError struct{ msg string }

func (e *apiError) Error() string { return "random.org: " + e.msg }
