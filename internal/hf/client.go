// Package hf talks to the Hugging Face hub and materializes model
// snapshots into the local hub cache.
package hf

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/henrybravo/mlx-project/internal/config"
	"github.com/henrybravo/mlx-project/internal/version"
)

const (
	defaultBaseURL = "https://huggingface.co"
	maxRetries     = 3
	retryDelay     = 1 * time.Second
)

type Client struct {
	baseURL        string
	httpClient     *http.Client
	downloadClient *http.Client
	token          string
}

// ModelInfo is the subset of the hub's model metadata the fetcher needs.
// SHA is the commit the default revision currently points at; Siblings
// lists every file in the repository, with LFS hash/size when the file is
// stored in LFS.
type ModelInfo struct {
	ID       string      `json:"id"`
	SHA      string      `json:"sha"`
	Private  bool        `json:"private"`
	Gated    GatedStatus `json:"gated"`
	Siblings []Sibling   `json:"siblings"`
}

type Sibling struct {
	RFilename string   `json:"rfilename"`
	Size      int64    `json:"size"`
	LFS       *LFSInfo `json:"lfs"`
}

type LFSInfo struct {
	SHA256 string `json:"sha256"`
	Size   int64  `json:"size"`
}

// GatedStatus handles the hub's "gated" field which can be bool or string.
type GatedStatus bool

func (g *GatedStatus) UnmarshalJSON(data []byte) error {
	// Try bool first
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*g = GatedStatus(b)
		return nil
	}
	if string(data) == "null" {
		*g = false
		return nil
	}
	// Must be a string like "manual" or "auto" - treat as gated
	*g = true
	return nil
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		downloadClient: &http.Client{
			Transport: &http.Transport{
				ResponseHeaderTimeout: 30 * time.Second,
			},
		},
		token: getToken(cfg),
	}
}

func getToken(cfg *config.Config) string {
	if token := os.Getenv("HF_TOKEN"); token != "" {
		return token
	}

	tokenPath := filepath.Join(config.GetHomeDir(), ".cache", "huggingface", "token")
	if data, err := os.ReadFile(tokenPath); err == nil {
		return strings.TrimSpace(string(data))
	}

	if cfg != nil {
		return cfg.HuggingFace.Token
	}
	return ""
}

// HasToken reports whether any hub token source is configured.
func HasToken(cfg *config.Config) bool {
	return getToken(cfg) != ""
}

func (c *Client) doRequest(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", version.UserAgent())
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		resp, err := c.httpClient.Do(req)
		if err == nil {
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				time.Sleep(retryDelay * time.Duration(i+1))
				continue
			}
			return resp, nil
		}
		lastErr = err
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("request failed after %d retries: %w", maxRetries, lastErr)
}

// GetModel fetches repository metadata for org/name, including per-file
// LFS information and the commit sha of the default revision.
func (c *Client) GetModel(ctx context.Context, org, name string) (*ModelInfo, error) {
	url := fmt.Sprintf("%s/api/models/%s/%s?blobs=true", c.baseURL, org, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var model ModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&model); err != nil {
		return nil, err
	}

	return &model, nil
}

// resolveURL returns the download URL for a file at a given revision.
func (c *Client) resolveURL(org, name, revision, filename string) string {
	return fmt.Sprintf("%s/%s/%s/resolve/%s/%s", c.baseURL, org, name, revision, filename)
}
