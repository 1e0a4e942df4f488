// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/tixctl/tixctl/internal/log"
)

const (
	apiPrefix = "/api/v2"
	mediaType = "application/vnd.api+json"
)

// ListOptions is the standard pagination starting point for all list
// operations. Commands embed it in per-resource options structs.
type ListOptions struct {
	PageNumber int
	PageSize   int
}

// DefaultListOptions is the first page every paginated query starts from.
var DefaultListOptions = ListOptions{
	PageNumber: 1,
	PageSize:   100,
}

// Pagination mirrors the meta.pagination object of list responses.
type Pagination struct {
	CurrentPage int
	NextPage    int
	TotalPages  int
	TotalCount  int
}

// Client talks to one ticket server. The zero value is not usable; construct
// with NewClient.
type Client struct {
	BaseURL *url.URL
	Token   string
	HTTP    *http.Client

	Projects *ProjectService
	Issues   *IssueService
	Releases *ReleaseService
	Members  *MemberService
	Statuses *StatusService

	// host is kept separately for cache keying and error messages.
	host string
}

// NewClient builds a client for the given host. The host is bare
// (tix.example.com); the scheme and API prefix are fixed. The token may be
// empty, in which case every call will come back ErrUnauthorized from the
// server, which is a clearer failure than guessing here.
func NewClient(host, token string) (*Client, error) {
	if host == "" {
		return nil, ErrHostNotSet
	}

	base, err := url.Parse("https://" + host + apiPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to parse host %q: %w", host, err)
	}

	c := &Client{
		BaseURL: base,
		Token:   token,
		HTTP:    &http.Client{},
		host:    host,
	}

	c.Projects = &ProjectService{client: c}
	c.Issues = &IssueService{client: c}
	c.Releases = &ReleaseService{client: c}
	c.Members = &MemberService{client: c}
	c.Statuses = &StatusService{client: c}

	return c, nil
}

// Host returns the bare hostname this client talks to.
func (c *Client) Host() string {
	return c.host
}

// get performs a cached GET. The full URL is the cache key; entries live
// beneath host/project so mutations can purge a single project's tree. An
// empty project caches directly beneath the host.
func (c *Client) get(ctx context.Context, project, path string, query url.Values) (bytes.Buffer, error) {
	u := c.BaseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	if err := PurgeCache(); err != nil {
		log.WithError(err).Warnf("failed to purge cache")
	}

	if entry, ok := CacheReader(c, project, u.String()); ok {
		log.Debugf("cache hit: %s", entry.Path)
		return *bytes.NewBuffer(entry.Data), nil
	}

	doc, err := c.roundTrip(ctx, http.MethodGet, u, nil)
	if err != nil {
		return bytes.Buffer{}, err
	}

	if err := CacheWriter(c, project, u.String(), doc.Bytes()); err != nil {
		log.WithError(err).Warnf("failed to write response to cache")
	}

	return doc, nil
}

// do performs an uncached mutation (POST/PATCH/DELETE) and purges the
// project's cache tree on success so follow-up queries see fresh data.
func (c *Client) do(ctx context.Context, method, project, path string, body io.Reader) (bytes.Buffer, error) {
	u := c.BaseURL.JoinPath(path)

	doc, err := c.roundTrip(ctx, method, u, body)
	if err != nil {
		return bytes.Buffer{}, err
	}

	if err := PurgeProject(c, project); err != nil {
		log.WithError(err).Warnf("failed to invalidate project cache")
	}

	return doc, nil
}

// roundTrip is the single HTTP touchpoint: headers, status mapping, body
// capture.
func (c *Client) roundTrip(ctx context.Context, method string, u *url.URL, body io.Reader) (bytes.Buffer, error) {
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", mediaType)
	if body != nil {
		req.Header.Set("Content-Type", mediaType)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	log.Debugf("api %s %s", method, u.String())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return bytes.Buffer{}, fmt.Errorf("failed to read response: %w", err)
	}

	if err := checkStatus(resp.StatusCode, doc.Bytes()); err != nil {
		return bytes.Buffer{}, err
	}

	return doc, nil
}

// parsePagination reads the meta.pagination object from a raw list response.
// A response without one is a single, final page.
func parsePagination(raw []byte) *Pagination {
	meta := gjson.GetBytes(raw, "meta.pagination")
	if !meta.Exists() {
		return &Pagination{CurrentPage: 1}
	}

	return &Pagination{
		CurrentPage: int(meta.Get("current-page").Int()),
		NextPage:    int(meta.Get("next-page").Int()),
		TotalPages:  int(meta.Get("total-pages").Int()),
		TotalCount:  int(meta.Get("total-count").Int()),
	}
}

// listQuery renders ListOptions into JSON:API page params.
func listQuery(opts ListOptions) url.Values {
	query := url.Values{}
	if opts.PageNumber > 0 {
		query.Set("page[number]", strconv.Itoa(opts.PageNumber))
	}
	if opts.PageSize > 0 {
		query.Set("page[size]", strconv.Itoa(opts.PageSize))
	}
	return query
}

// issuePath joins the project-scoped issue path for a given number.
func issuePath(project string, number int64) string {
	return strings.Join([]string{
		"projects", project, "issues", strconv.FormatInt(number, 10),
	}, "/")
}
