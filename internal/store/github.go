package store

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/conquiguias/conquiguias-api/internal/config"
	"golang.org/x/oauth2"
)

// GitHub implements Store on top of the GitHub Contents API, using one
// repository as the database and commit SHAs as version tokens.
type GitHub struct {
	httpClient *http.Client
	baseURL    string
	repo       string
	branch     string
}

func NewGitHub(cfg config.GitHubConfig) *GitHub {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "token"})
	return &GitHub{
		httpClient: oauth2.NewClient(context.Background(), src),
		baseURL:    "https://api.github.com",
		repo:       cfg.Repo,
		branch:     cfg.Branch,
	}
}

type contentResponse struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Type        string `json:"type"`
	Content     string `json:"content"`
	DownloadURL string `json:"download_url"`
}

type writeResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

type apiError struct {
	Message string `json:"message"`
}

func (g *GitHub) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/contents/%s", g.baseURL, g.repo, path)
}

func (g *GitHub) Get(ctx context.Context, path string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.contentsURL(path)+"?ref="+g.branch, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError("get", path, resp)
	}

	var file contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode contents of %s: %w", path, err)
	}

	// GitHub wraps base64 payloads with newlines.
	raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 content of %s: %w", path, err)
	}

	return &Document{Content: raw, Version: Version(file.SHA)}, nil
}

// PutJSON encodes v as canonical JSON with 2-space indentation so commits in
// the backing repository diff cleanly, then writes it at path. An empty
// version creates the document; otherwise the version must still match.
func (g *GitHub) PutJSON(ctx context.Context, path string, v any, version Version, message string) (Version, error) {
	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode document %s: %w", path, err)
	}
	return g.put(ctx, path, base64.StdEncoding.EncodeToString(content), version, message)
}

// PutBlob writes an already base64-encoded binary payload. Blobs are
// create-only: no version token is ever sent.
func (g *GitHub) PutBlob(ctx context.Context, path, contentBase64, message string) (Version, error) {
	return g.put(ctx, path, contentBase64, "", message)
}

func (g *GitHub) put(ctx context.Context, path, contentBase64 string, version Version, message string) (Version, error) {
	body := map[string]any{
		"message": message,
		"content": contentBase64,
		"branch":  g.branch,
	}
	if version != "" {
		body["sha"] = string(version)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.contentsURL(path), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer resp.Body.Close()

	// 409 is a sha mismatch; 422 covers a missing sha for an existing file.
	if resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity {
		return "", fmt.Errorf("put %s: %w", path, ErrVersionConflict)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", g.statusError("put", path, resp)
	}

	var written writeResponse
	if err := json.NewDecoder(resp.Body).Decode(&written); err != nil {
		return "", fmt.Errorf("failed to decode write response for %s: %w", path, err)
	}
	return Version(written.Content.SHA), nil
}

func (g *GitHub) Delete(ctx context.Context, path string, version Version, message string) error {
	body := map[string]any{
		"message": message,
		"sha":     string(version),
		"branch":  g.branch,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.contentsURL(path), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("delete %s: %w", path, ErrVersionConflict)
	case resp.StatusCode != http.StatusOK:
		return g.statusError("delete", path, resp)
	}
	return nil
}

func (g *GitHub) List(ctx context.Context, dir string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.contentsURL(dir)+"?ref="+g.branch, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, g.statusError("list", dir, resp)
	}

	var files []contentResponse
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return nil, fmt.Errorf("failed to decode listing of %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(files))
	for _, f := range files {
		entries = append(entries, Entry{
			Name:        f.Name,
			Path:        f.Path,
			DownloadURL: f.DownloadURL,
			Type:        f.Type,
		})
	}
	return entries, nil
}

func (g *GitHub) statusError(op, path string, resp *http.Response) error {
	var apiErr apiError
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(data, &apiErr)
	if apiErr.Message != "" {
		return fmt.Errorf("github %s %s: status %d: %s", op, path, resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("github %s %s: status %d", op, path, resp.StatusCode)
}
