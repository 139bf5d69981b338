package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ProfileScout/internal/ports"
)

// Notifier posts finished digests to a configured webhook as JSON.
type Notifier struct {
	url    string
	client *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers the webhook endpoint.
func NewNotifier(url string) *Notifier {
	return &Notifier{
		url:    url,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// PublishDigest sends {"text": digest} to the webhook.
func (n *Notifier) PublishDigest(ctx context.Context, digest string) error {
	if n.url == "" || n.client == nil {
		return fmt.Errorf("webhook notifier misconfigured")
	}

	body, err := json.Marshal(map[string]string{"text": digest})
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook error: %s", resp.Status)
	}

	return nil
}
