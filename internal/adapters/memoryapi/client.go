package memoryapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bnema/memory-garden/internal/domain"
	"github.com/bnema/memory-garden/internal/ports"
)

const (
	memoriesPath   = "/memories"
	searchPath     = "/memories/search"
	maxBodyBytes   = 8 << 20
	userAgent      = "garden/layout"
	errorBodyLimit = 512
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.MemorySource = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errors.New("api base url is empty")
	}
	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{baseURL: trimmed, httpClient: httpClient}, nil
}

func (c *Client) List(ctx context.Context, userID domain.UserID) ([]domain.Memory, error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(int64(userID), 10))

	return c.getMemories(ctx, memoriesPath, params)
}

func (c *Client) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Memory, error) {
	params := url.Values{}
	params.Set("user_id", strconv.FormatInt(int64(query.UserID), 10))
	setIfPresent(params, "q", query.Text)
	setIfPresent(params, "emotion", query.Emotion)
	setIfPresent(params, "date_from", query.DateFrom)
	setIfPresent(params, "date_to", query.DateTo)

	return c.getMemories(ctx, searchPath, params)
}

func (c *Client) getMemories(ctx context.Context, path string, params url.Values) ([]domain.Memory, error) {
	endpoint := c.baseURL + path + "?" + params.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("User-Agent", userAgent)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: perform request: %w", domain.ErrFetchFailed, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", domain.ErrFetchFailed, err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrFetchFailed, response.StatusCode, truncate(strings.TrimSpace(string(body)), errorBodyLimit))
	}

	var memories []domain.Memory
	if err := json.Unmarshal(body, &memories); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", domain.ErrFetchFailed, err)
	}

	return memories, nil
}

func setIfPresent(params url.Values, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params.Set(key, value)
	}
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit] + "..."
}
