/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/figtokens/internal/logger"
	"bennypowers.dev/figtokens/internal/version"
)

const (
	// DefaultBaseURL is the Figma REST API root.
	DefaultBaseURL = "https://api.figma.com/v1"

	// DefaultTimeout is the maximum time to wait for a single request.
	DefaultTimeout = 60 * time.Second

	// DefaultMaxSize is the maximum allowed response size (64 MB).
	DefaultMaxSize int64 = 64 * 1024 * 1024

	// DefaultBatchSize is how many node ids go into one /nodes request.
	DefaultBatchSize = 100

	// DefaultConcurrency bounds parallel /nodes requests.
	DefaultConcurrency = 4

	// DefaultCacheSize is the number of node entries kept between requests.
	DefaultCacheSize = 4096

	// TokenHeader carries the personal access token.
	TokenHeader = "X-FIGMA-TOKEN"
)

// ErrMissingCredentials is returned when the access token or file key is unset.
var ErrMissingCredentials = errors.New("missing Figma credentials: set FIGMA_TOKEN and FIGMA_DESIGN_TOKEN_FILE_KEY")

// ClientOptions configures a Client. Zero values select defaults.
type ClientOptions struct {
	BaseURL     string
	BatchSize   int
	Concurrency int
	MaxSize     int64
	CacheSize   int
	HTTPClient  *http.Client
}

// Client fetches styles, components and nodes of one Figma file.
type Client struct {
	baseURL     string
	token       string
	fileKey     string
	batchSize   int
	concurrency int
	maxSize     int64
	http        *http.Client
	cache       *lru.Cache[string, *NodeEntry]
}

// NewClient creates a client for fileKey authenticated with accessToken.
func NewClient(accessToken, fileKey string, opts ClientOptions) (*Client, error) {
	if strings.TrimSpace(accessToken) == "" || strings.TrimSpace(fileKey) == "" {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		baseURL:     strings.TrimRight(opts.BaseURL, "/"),
		token:       accessToken,
		fileKey:     fileKey,
		batchSize:   opts.BatchSize,
		concurrency: opts.Concurrency,
		maxSize:     opts.MaxSize,
		http:        opts.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.batchSize <= 0 {
		c.batchSize = DefaultBatchSize
	}
	if c.concurrency <= 0 {
		c.concurrency = DefaultConcurrency
	}
	if c.maxSize <= 0 {
		c.maxSize = DefaultMaxSize
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}

	cacheSize := opts.CacheSize
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, *NodeEntry](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating node cache: %w", err)
	}
	c.cache = cache

	return c, nil
}

// FileKey returns the key of the file this client reads.
func (c *Client) FileKey() string {
	return c.fileKey
}

type stylesResponse struct {
	Meta struct {
		Styles []Style `json:"styles"`
	} `json:"meta"`
}

type componentsResponse struct {
	Meta struct {
		Components []Component `json:"components"`
	} `json:"meta"`
}

type nodesResponse struct {
	Nodes *NodeMap `json:"nodes"`
}

// Styles lists the file's published styles.
func (c *Client) Styles(ctx context.Context) ([]Style, error) {
	var resp stylesResponse
	if err := c.get(ctx, "/styles", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meta.Styles, nil
}

// Components lists the file's published components.
func (c *Client) Components(ctx context.Context) ([]Component, error) {
	var resp componentsResponse
	if err := c.get(ctx, "/components", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Meta.Components, nil
}

// Nodes fetches the given node ids in batches and returns them in request order.
// Duplicate ids are fetched once; previously fetched ids are served from cache.
func (c *Client) Nodes(ctx context.Context, ids []string) (*NodeMap, error) {
	ids = dedupe(ids)

	cached := make(map[string]*NodeEntry)
	var missing []string
	for _, id := range ids {
		if entry, ok := c.cache.Get(id); ok {
			cached[id] = entry
			continue
		}
		missing = append(missing, id)
	}

	batches := chunk(missing, c.batchSize)
	results := make([]*NodeMap, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, batch := range batches {
		g.Go(func() error {
			query := url.Values{}
			query.Set("ids", strings.Join(batch, ","))
			var resp nodesResponse
			if err := c.get(gctx, "/nodes", query, &resp); err != nil {
				return err
			}
			results[i] = resp.Nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fetched := make(map[string]*NodeEntry, len(missing))
	for _, nodes := range results {
		for _, id := range nodes.IDs() {
			entry, _ := nodes.Get(id)
			fetched[id] = entry
		}
	}

	result := NewNodeMap()
	for _, id := range ids {
		if entry, ok := cached[id]; ok {
			result.Set(id, entry)
			continue
		}
		entry, ok := fetched[id]
		if !ok {
			logger.Warn("node %s missing from Figma response", id)
		}
		result.Set(id, entry)
	}

	// Cache only after the result is built: adding may evict this call's hits.
	for _, id := range missing {
		if entry := fetched[id]; entry != nil {
			c.cache.Add(id, entry)
		}
	}

	return result, nil
}

// Snapshot fetches styles, components and their nodes.
func (c *Client) Snapshot(ctx context.Context) (*Snapshot, error) {
	styles, err := c.Styles(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching styles: %w", err)
	}
	components, err := c.Components(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching components: %w", err)
	}

	styleIDs := make([]string, 0, len(styles))
	for _, s := range styles {
		styleIDs = append(styleIDs, s.NodeID)
	}
	componentIDs := make([]string, 0, len(components))
	for _, comp := range components {
		componentIDs = append(componentIDs, comp.NodeID)
	}

	styleNodes, err := c.Nodes(ctx, styleIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching style nodes: %w", err)
	}
	componentNodes, err := c.Nodes(ctx, componentIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching component nodes: %w", err)
	}

	return &Snapshot{
		FileKey:        c.fileKey,
		Styles:         styles,
		Components:     components,
		StyleNodes:     styleNodes,
		ComponentNodes: componentNodes,
	}, nil
}

// get performs an authenticated GET against the file and decodes the JSON body into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	endpoint := c.baseURL + "/files/" + url.PathEscape(c.fileKey) + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", path, err)
	}
	req.Header.Set(TokenHeader, c.token)
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("timeout fetching %s: %w", path, err)
		}
		return fmt.Errorf("fetching %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching %s: %s", path, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, c.maxSize+1)
	content, err := io.ReadAll(limitedReader)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}
	if int64(len(content)) > c.maxSize {
		return fmt.Errorf("response from %s exceeds maximum size of %d bytes", path, c.maxSize)
	}

	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func chunk(ids []string, size int) [][]string {
	var batches [][]string
	for len(ids) > 0 {
		n := min(size, len(ids))
		batches = append(batches, ids[:n])
		ids = ids[n:]
	}
	return batches
}
