package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultAPIURL = "https://api.telegram.org"

// TelegramNotifier delivers messages through the Telegram Bot API
// sendMessage method. Messages are HTML-formatted, matching what the render
// package produces.
type TelegramNotifier struct {
	baseURL string
	token   string
	client  *http.Client
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NewTelegramNotifier creates new TelegramNotifier instance. An empty
// baseURL selects the public Bot API endpoint.
func NewTelegramNotifier(baseURL, token string) *TelegramNotifier {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &TelegramNotifier{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *TelegramNotifier) Send(ctx context.Context, chatID int64, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	var res sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err)
	}
	if !res.OK {
		return fmt.Errorf("sendMessage failed (status %d): %s", resp.StatusCode, res.Description)
	}

	// drain to reuse the connection
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
