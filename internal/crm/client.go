// Package crm forwards captured leads to a Bitrix24 inbound webhook.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

// LeadRequest holds the contact details of one lead.
type LeadRequest struct {
	Title    string
	Name     string
	Phone    string
	Email    string
	Comments string
}

// LeadResponse holds the result of a lead creation call.
type LeadResponse struct {
	LeadID    int64
	LatencyMs int64
}

// Client provides access to the CRM for lead creation.
type Client interface {
	// CreateLead registers a new lead and returns its CRM identifier.
	CreateLead(ctx context.Context, req LeadRequest) (*LeadResponse, error)

	// Available checks whether the CRM endpoint is reachable.
	Available(ctx context.Context) bool
}

// bitrixClient implements Client against the Bitrix24 REST webhook API.
type bitrixClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewBitrixClient creates a Client that posts leads to a Bitrix24
// inbound webhook.
func NewBitrixClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &bitrixClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// multiField is Bitrix's representation of phone and email values.
type multiField struct {
	Value     string `json:"VALUE"`
	ValueType string `json:"VALUE_TYPE"`
}

// leadFields mirrors the crm.lead.add field names.
type leadFields struct {
	Title    string       `json:"TITLE"`
	Name     string       `json:"NAME"`
	Phone    []multiField `json:"PHONE,omitempty"`
	Email    []multiField `json:"EMAIL,omitempty"`
	Comments string       `json:"COMMENTS,omitempty"`
	SourceID string       `json:"SOURCE_ID"`
}

type leadAddRequest struct {
	Fields leadFields `json:"fields"`
}

// leadAddResponse is the JSON body returned by crm.lead.add.json.
type leadAddResponse struct {
	Result           int64  `json:"result"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (c *bitrixClient) CreateLead(ctx context.Context, req LeadRequest) (*LeadResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	fields := leadFields{
		Title:    req.Title,
		Name:     req.Name,
		Comments: req.Comments,
		SourceID: c.cfg.SourceID,
	}
	if req.Phone != "" {
		fields.Phone = []multiField{{Value: req.Phone, ValueType: "WORK"}}
	}
	if req.Email != "" {
		fields.Email = []multiField{{Value: req.Email, ValueType: "WORK"}}
	}
	body := leadAddRequest{Fields: fields}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			latency := time.Since(start).Milliseconds()
			c.observer.OnCallComplete(CallEvent{
				LeadTitle: req.Title,
				LatencyMs: latency,
				Success:   true,
			})
			return &LeadResponse{LeadID: resp.Result, LatencyMs: latency}, nil
		}
		lastErr = err

		// A rejection will not improve with repetition.
		if errors.Is(err, ErrRejected) {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		LeadTitle: req.Title,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if errors.Is(lastErr, ErrRejected) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *bitrixClient) doRequest(ctx context.Context, body leadAddRequest) (*leadAddResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	url := strings.TrimRight(c.cfg.WebhookURL, "/") + "/crm.lead.add.json"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode >= 400 && httpResp.StatusCode < 500 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, httpResp.StatusCode, string(respBody))
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bitrix returned status %d: %s", httpResp.StatusCode, string(respBody))
	}

	var resp leadAddResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("%w: %s: %s", ErrRejected, resp.Error, resp.ErrorDescription)
	}

	return &resp, nil
}

func (c *bitrixClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	url := strings.TrimRight(c.cfg.WebhookURL, "/") + "/profile.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case isConnectionError(err):
		return "unavailable"
	default:
		return "error"
	}
}

// logClient records leads instead of forwarding them. Used when no
// webhook is configured, so captured contacts are never lost silently.
type logClient struct{}

// NewLogClient creates a Client that only logs lead payloads.
func NewLogClient() Client {
	return logClient{}
}

func (logClient) CreateLead(_ context.Context, req LeadRequest) (*LeadResponse, error) {
	log.Printf("crm disabled, lead logged: title=%q name=%q phone=%q email=%q",
		req.Title, req.Name, req.Phone, req.Email)
	return &LeadResponse{}, nil
}

func (logClient) Available(context.Context) bool { return false }
