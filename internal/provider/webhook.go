package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/insider-one/telert-api/internal/domain"
)

const maxErrorBodySize = 4 << 10

// Encoder turns a message into a request body and its content type
type Encoder func(message string) ([]byte, string, error)

// JSONEncoder builds a JSON body from the message
func JSONEncoder(build func(message string) any) Encoder {
	return func(message string) ([]byte, string, error) {
		body, err := json.Marshal(build(message))
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		return body, "application/json", nil
	}
}

// TextEncoder sends the message as a plain text body
func TextEncoder(message string) ([]byte, string, error) {
	return []byte(message), "text/plain; charset=utf-8", nil
}

// WebhookSender implements domain.Sender with a single HTTP POST
type WebhookSender struct {
	client   *http.Client
	provider string
	url      string
	encode   Encoder
	headers  map[string]string
}

// NewWebhookSender creates a new WebhookSender
func NewWebhookSender(client *http.Client, provider, url string, encode Encoder) *WebhookSender {
	return &WebhookSender{
		client:   client,
		provider: provider,
		url:      url,
		encode:   encode,
		headers:  make(map[string]string),
	}
}

// WithHeader adds a header to every request
func (s *WebhookSender) WithHeader(key, value string) *WebhookSender {
	s.headers[key] = value
	return s
}

// Send posts the message to the provider
func (s *WebhookSender) Send(ctx context.Context, message string) error {
	body, contentType, err := s.encode(message)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return domain.NewProviderError(s.provider, 0, "failed to create request: "+withoutURL(err))
	}

	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range s.headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return domain.NewProviderError(s.provider, 0, "request failed: "+withoutURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return domain.NewProviderError(s.provider, resp.StatusCode, string(respBody))
	}

	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))

	return nil
}

// withoutURL drops the request URL from net/http errors. Some providers
// carry credentials in the URL path (telegram bot tokens).
func withoutURL(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Op + ": " + urlErr.Err.Error()
	}
	return err.Error()
}
