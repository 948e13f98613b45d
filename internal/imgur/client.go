// Package imgur proxies anonymous uploads and deletions to the Imgur API so
// that the client id never reaches browsers directly.
package imgur

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

var ErrNotConfigured = errors.New("imgur client id is not configured")

type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
}

// Image is the subset of the Imgur upload response the platform exposes.
type Image struct {
	ID         string `json:"id"`
	Link       string `json:"link"`
	DeleteHash string `json:"deletehash"`
}

func NewClient(clientID string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://api.imgur.com",
		clientID:   clientID,
	}
}

func (c *Client) IsConfigured() bool {
	return c.clientID != ""
}

// ClientID returns the configured id for clients that upload directly.
func (c *Client) ClientID() string {
	return c.clientID
}

// Upload sends a base64-encoded image to Imgur and returns its public link
// together with the deletehash needed to remove it later.
func (c *Client) Upload(ctx context.Context, imageBase64 string) (*Image, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("image", imageBase64); err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/3/image", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach imgur: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}

	var decoded struct {
		Data    Image `json:"data"`
		Success bool  `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode imgur response: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("imgur rejected the upload")
	}
	return &decoded.Data, nil
}

// Delete removes a previously uploaded image by its deletehash.
func (c *Client) Delete(ctx context.Context, deleteHash string) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/3/image/"+deleteHash, nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach imgur: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return statusError(resp)
	}
	return nil
}

func statusError(resp *http.Response) error {
	payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var decoded struct {
		Data struct {
			Error string `json:"error"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &decoded); err == nil && decoded.Data.Error != "" {
		return fmt.Errorf("imgur request failed with status %d: %s", resp.StatusCode, decoded.Data.Error)
	}
	return fmt.Errorf("imgur request failed with status %d", resp.StatusCode)
}
