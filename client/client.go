// Package client calls the card validation HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/alovak/cardvalidation/cardvalidation"
	"github.com/alovak/cardvalidation/cardvalidation/models"
	"github.com/alovak/cardvalidation/internal/card"
)

type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Error is a non-200 answer of the API. Fields is set when the server
// rejected individual card fields.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	Fields     map[string][]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("status=%d code=%s: %s", e.StatusCode, e.Code, e.Message)
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	var msgs []string
	for _, name := range names {
		msgs = append(msgs, e.Fields[name]...)
	}
	return fmt.Sprintf("status=%d code=%s: %s", e.StatusCode, e.Code, strings.Join(msgs, "; "))
}

// Validate submits the card and returns its network.
func (c *Client) Validate(ctx context.Context, creditCard models.CreditCard) (card.Network, error) {
	b, err := json.Marshal(creditCard)
	if err != nil {
		return "", fmt.Errorf("encode card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+cardvalidation.ValidatePath, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("validate: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var payload struct {
			Code    string              `json:"code"`
			Message string              `json:"message"`
			Errors  map[string][]string `json:"errors"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			apiErr.Message = strings.TrimSpace(string(body))
			return "", apiErr
		}
		apiErr.Code = payload.Code
		apiErr.Message = payload.Message
		apiErr.Fields = payload.Errors
		return "", apiErr
	}

	var network card.Network
	if err := json.Unmarshal(body, &network); err != nil {
		return "", fmt.Errorf("decode network: %w", err)
	}
	return network, nil
}
