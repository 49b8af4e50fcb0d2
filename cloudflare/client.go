// Package cloudflare implements custom hostname provisioning via the
// Cloudflare for SaaS API. Each connected store domain becomes a custom
// hostname routed to a fallback origin, with Cloudflare issuing the
// certificate.
package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/storegen"
)

// DefaultBaseURL is the Cloudflare v4 API endpoint.
const DefaultBaseURL = "https://api.cloudflare.com/client/v4"

// Ensure Client implements storegen.HostnameProvider at compile time.
var _ storegen.HostnameProvider = (*Client)(nil)

// Client talks to the Cloudflare custom hostnames API for a single zone.
type Client struct {
	token   string
	zoneID  string
	baseURL string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new Client for the given API token and zone.
func NewClient(token, zoneID string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		zoneID:  zoneID,
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateHostname registers a custom hostname with HTTP certificate
// validation.
func (c *Client) CreateHostname(ctx context.Context, hostname string) (*storegen.Hostname, error) {
	body := map[string]any{
		"hostname": hostname,
		"ssl": map[string]any{
			"method": "http", // HTTP validation (automatic)
			"type":   "dv",
			"settings": map[string]any{
				"min_tls_version": "1.2",
				"http2":           "on",
				"early_hints":     "on",
			},
			"bundle_method": "ubiquitous",
			"wildcard":      false,
		},
	}

	var result apiHostname
	if err := c.do(ctx, http.MethodPost, c.hostnamesURL(), body, &result); err != nil {
		return nil, err
	}
	return result.toHostname(), nil
}

// FindHostname looks up the hostname resource by its name.
func (c *Client) FindHostname(ctx context.Context, hostname string) (*storegen.Hostname, error) {
	u := c.hostnamesURL() + "?hostname=" + url.QueryEscape(hostname)

	var result []apiHostname
	if err := c.do(ctx, http.MethodGet, u, nil, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return nil, storegen.Errorf(storegen.ENOTFOUND, "hostname %q not found", hostname)
	}
	return result[0].toHostname(), nil
}

// DeleteHostname removes the hostname resource by provider ID.
func (c *Client) DeleteHostname(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.hostnamesURL()+"/"+id, nil, nil)
}

func (c *Client) hostnamesURL() string {
	return fmt.Sprintf("%s/zones/%s/custom_hostnames", c.baseURL, c.zoneID)
}

// do runs one API request and decodes the success/errors envelope.
func (c *Client) do(ctx context.Context, method, url string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return storegen.Errorf(storegen.EINTERNAL, "marshaling request: %v", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return storegen.Errorf(storegen.EINTERNAL, "creating request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return storegen.Errorf(storegen.EUNAVAILABLE, "API request: %v", err)
	}
	defer resp.Body.Close()

	var envelope struct {
		Success bool `json:"success"`
		Errors  []struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"errors"`
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return storegen.Errorf(storegen.EINTERNAL, "parsing response: %v", err)
	}

	if !envelope.Success {
		if len(envelope.Errors) > 0 {
			return storegen.Errorf(storegen.EINTERNAL, "cloudflare error %d: %s",
				envelope.Errors[0].Code, envelope.Errors[0].Message)
		}
		return storegen.Errorf(storegen.EINTERNAL, "cloudflare request failed (%d)", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return storegen.Errorf(storegen.EINTERNAL, "parsing result: %v", err)
		}
	}
	return nil
}

// apiHostname is the wire shape of a Cloudflare custom hostname.
type apiHostname struct {
	ID       string `json:"id"`
	Hostname string `json:"hostname"`
	Status   string `json:"status"`
	SSL      struct {
		Status            string `json:"status"`
		Method            string `json:"method"`
		ValidationRecords []struct {
			TxtName  string `json:"txt_name"`
			TxtValue string `json:"txt_value"`
		} `json:"validation_records"`
		ValidationErrors []struct {
			Message string `json:"message"`
		} `json:"validation_errors"`
	} `json:"ssl"`
}

func (h *apiHostname) toHostname() *storegen.Hostname {
	out := &storegen.Hostname{
		ID:       h.ID,
		Hostname: h.Hostname,
		Status:   h.Status,
		SSL: storegen.HostnameSSL{
			Status: h.SSL.Status,
			Method: h.SSL.Method,
		},
	}
	for _, rec := range h.SSL.ValidationRecords {
		out.SSL.ValidationRecords = append(out.SSL.ValidationRecords, storegen.DNSRecord{
			Type:  "TXT",
			Name:  rec.TxtName,
			Value: rec.TxtValue,
		})
	}
	for _, verr := range h.SSL.ValidationErrors {
		out.SSL.ValidationErrors = append(out.SSL.ValidationErrors, verr.Message)
	}
	return out
}
