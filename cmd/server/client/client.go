// Package client provides commands for exercising the catalog HTTP API
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the catalog API",
	Long:  `Client commands call a running catalog server over HTTP and print the results.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "http://localhost:8080", "Catalog server base URL")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(listSpellsCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(favoriteCmd)
	ClientCmd.AddCommand(routeCmd)
}

// envelope mirrors the server's success body
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// apiError mirrors the server's error body
type apiError struct {
	Message string `json:"error"`
	Code    string `json:"code"`
	status  int
}

func (e *apiError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.status)
	}
	return fmt.Sprintf("%s (%s, %d)", e.Message, e.Code, e.status)
}

// apiClient is a thin resty wrapper that unwraps response envelopes
type apiClient struct {
	http *resty.Client
}

func newAPIClient(baseURL string, requestTimeout time.Duration) *apiClient {
	return &apiClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Accept", "application/json").
			SetTimeout(requestTimeout),
	}
}

// createClient creates an API client from the persistent flags
func createClient() (*apiClient, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return newAPIClient(serverAddr, timeout), ctx, cancel
}

// do sends the request and decodes data and meta into the given targets.
// Either target may be nil.
func (c *apiClient) do(ctx context.Context, method, path string, query map[string]string, data, meta any) error {
	req := c.http.R().SetContext(ctx)
	for k, v := range query {
		if v != "" {
			req.SetQueryParam(k, v)
		}
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if resp.IsError() {
		apiErr := &apiError{status: resp.StatusCode()}
		_ = json.Unmarshal(resp.Body(), apiErr) // nolint:errcheck // fall back to status only
		return apiErr
	}

	if len(resp.Body()) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			return fmt.Errorf("failed to decode data: %w", err)
		}
	}
	if meta != nil && len(env.Meta) > 0 {
		if err := json.Unmarshal(env.Meta, meta); err != nil {
			return fmt.Errorf("failed to decode meta: %w", err)
		}
	}

	return nil
}
