// internal/app/store/docstore/github.go
package docstore

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// GitHubConfig identifies one file in a repository served by the GitHub
// contents API (or anything wire-compatible with it).
type GitHubConfig struct {
	Token  string
	Owner  string
	Repo   string
	Branch string
	Path   string // file path within the repo, e.g. "users.json"
}

// GitHub is a Store backed by the GitHub contents API. The version token is
// the blob sha GitHub returns with the content; PUTs carry it back so GitHub
// rejects writes against a stale sha.
type GitHub struct {
	cfg    GitHubConfig
	client *http.Client
}

// NewGitHub returns a GitHub store. A nil client gets a 15s-timeout default.
func NewGitHub(cfg GitHubConfig, client *http.Client) *GitHub {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	return &GitHub{cfg: cfg, client: client}
}

const githubAPIBase = "https://api.github.com"

// BaseURL overrides the API host, used by tests to point at a local server.
var githubBaseURL = githubAPIBase

// SetBaseURLForTest swaps the API host and returns a restore func.
func SetBaseURLForTest(base string) func() {
	prev := githubBaseURL
	githubBaseURL = base
	return func() { githubBaseURL = prev }
}

func (g *GitHub) contentsURL() string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		githubBaseURL, g.cfg.Owner, g.cfg.Repo, url.PathEscape(g.cfg.Path))
}

type githubFile struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

// Load fetches the file; content arrives base64-encoded alongside its sha.
func (g *GitHub) Load(ctx context.Context) ([]byte, Version, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		g.contentsURL()+"?ref="+url.QueryEscape(g.cfg.Branch), nil)
	if err != nil {
		return nil, "", err
	}
	g.setHeaders(req)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch %s: %w", g.cfg.Path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, "", ErrNotFound
	default:
		return nil, "", fmt.Errorf("fetch %s: unexpected status %d", g.cfg.Path, resp.StatusCode)
	}

	var file githubFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, "", fmt.Errorf("decode contents response: %w", err)
	}
	raw, err := base64.StdEncoding.DecodeString(stripNewlines(file.Content))
	if err != nil {
		return nil, "", fmt.Errorf("decode %s content: %w", g.cfg.Path, err)
	}
	return raw, Version(file.SHA), nil
}

// Save PUTs the new content with the prior sha; GitHub answers 409/422 when
// the sha is stale.
func (g *GitHub) Save(ctx context.Context, content []byte, ver Version, message string) (Version, error) {
	body := map[string]string{
		"content": base64.StdEncoding.EncodeToString(content),
		"message": message,
		"branch":  g.cfg.Branch,
	}
	if ver != "" {
		body["sha"] = string(ver)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, g.contentsURL(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("put %s: %w", g.cfg.Path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return "", ErrConflict
	default:
		return "", fmt.Errorf("put %s: unexpected status %d", g.cfg.Path, resp.StatusCode)
	}

	var result struct {
		Content struct {
			SHA string `json:"sha"`
		} `json:"content"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode put response: %w", err)
	}
	return Version(result.Content.SHA), nil
}

// Delete removes the file; GitHub requires the current sha.
func (g *GitHub) Delete(ctx context.Context, ver Version, message string) error {
	body, err := json.Marshal(map[string]string{
		"message": message,
		"sha":     string(ver),
		"branch":  g.cfg.Branch,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.contentsURL(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	g.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete %s: %w", g.cfg.Path, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return ErrConflict
	default:
		return fmt.Errorf("delete %s: unexpected status %d", g.cfg.Path, resp.StatusCode)
	}
}

func (g *GitHub) setHeaders(req *http.Request) {
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "token "+g.cfg.Token)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "crewops")
}

// stripNewlines removes the line breaks GitHub inserts into base64 content.
func stripNewlines(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\n' && s[i] != '\r' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
