package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// TelegramClient posts order alerts to a Telegram chat through the bot API.
type TelegramClient struct {
	baseURL string
	token   string
	chatID  string
	client  *http.Client
}

func NewTelegramClient(baseURL, token, chatID string) *TelegramClient {
	return &TelegramClient{
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOrderAlert notifies the shop chat about a freshly submitted order.
func (c *TelegramClient) SendOrderAlert(ctx context.Context, orderNo, name string) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("write form field: %w", err)
	}
	text := fmt.Sprintf("New thesis order received: #%s\n%s", orderNo, name)
	if err := form.WriteField("text", text); err != nil {
		return fmt.Errorf("write form field: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("close form: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
