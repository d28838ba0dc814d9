// internal/notify/mattermost.go
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

// MattermostClient posts messages to a single Mattermost channel over the
// v4 REST API.
type MattermostClient struct {
	baseURL    string
	token      string
	channelID  string
	httpClient *http.Client
}

type mattermostPost struct {
	ChannelID string `json:"channel_id"`
	Message   string `json:"message"`
}

func NewMattermostClient(baseURL, token, channelID string) *MattermostClient {
	return &MattermostClient{
		baseURL:   baseURL,
		token:     token,
		channelID: channelID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *MattermostClient) PostMessage(ctx context.Context, message string) error {
	payload := mattermostPost{
		ChannelID: c.channelID,
		Message:   message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}

	url := fmt.Sprintf("%s/api/v4/posts", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to create post (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}
