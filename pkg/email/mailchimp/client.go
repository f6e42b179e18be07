package mailchimp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	baseURLTemplate = "https://%s.api.mailchimp.com/3.0"
	defaultTimeout  = 10 * time.Second
	basicAuthUser   = "anystring"
)

// Client talks to the Mailchimp Marketing API v3.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithBaseURL overrides the datacenter URL derived from the API key.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		dc, err := Datacenter(apiKey)
		if err != nil {
			return nil, err
		}
		c.baseURL = fmt.Sprintf(baseURLTemplate, dc)
	}

	return c, nil
}

// Datacenter extracts the datacenter from an API key of the form <key>-<dc>.
func Datacenter(apiKey string) (string, error) {
	i := strings.LastIndex(apiKey, "-")
	if i < 0 || i == len(apiKey)-1 {
		return "", ErrInvalidAPIKey
	}
	return apiKey[i+1:], nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the API is reachable and the key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	var resp pingResponse
	if err := c.do(ctx, http.MethodGet, "/ping", nil, nil, &resp); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// SearchMembers searches list members by address or name.
func (c *Client) SearchMembers(ctx context.Context, params SearchMembersParams) (*SearchMembersResponse, error) {
	query := url.Values{}
	query.Set("query", params.Query)
	if params.ListID != "" {
		query.Set("list_id", params.ListID)
	}
	if len(params.Fields) > 0 {
		query.Set("fields", strings.Join(params.Fields, ","))
	}

	var resp SearchMembersResponse
	if err := c.do(ctx, http.MethodGet, "/search-members", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("search members: %w", err)
	}

	return &resp, nil
}

// UpdateMember patches a list member identified by its subscriber hash.
func (c *Client) UpdateMember(ctx context.Context, listID string, subscriberHash string, req UpdateMemberRequest) (*MemberResponse, error) {
	path := fmt.Sprintf("/lists/%s/members/%s", url.PathEscape(listID), url.PathEscape(subscriberHash))

	var resp MemberResponse
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	return &resp, nil
}

// CreateMember adds a new member to a list.
func (c *Client) CreateMember(ctx context.Context, listID string, req CreateMemberRequest) (*MemberResponse, error) {
	if req.MergeFields == nil {
		req.MergeFields = map[string]string{}
	}
	path := fmt.Sprintf("/lists/%s/members", url.PathEscape(listID))

	var resp MemberResponse
	if err := c.do(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}

	return &resp, nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body any, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.SetBasicAuth(basicAuthUser, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{}
		_ = json.Unmarshal(respBody, apiErr)
		apiErr.StatusCode = resp.StatusCode
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
