package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrWebhookUnavailable = errors.New("notification webhook unavailable")

// WebhookClient - отправка уведомлений команде дизайна по HTTP
type WebhookClient struct {
	url        string
	httpClient HTTPClient
}

func NewWebhookClient(url string, client HTTPClient) *WebhookClient {
	return &WebhookClient{
		url:        url,
		httpClient: client,
	}
}

// Post - отправка произвольного JSON-сообщения на вебхук
func (c *WebhookClient) Post(ctx context.Context, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWebhookUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", ErrWebhookUnavailable, resp.StatusCode)
	}
	return nil
}
