// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/jsonapi"
)

// IssueService exposes the issue operations of the API.
type IssueService struct {
	client *Client
}

// IssueListOptions are the query parameters of an issue list call. The
// server-side filters are passed straight through as JSON:API filter params;
// client-side filtering (resource match expressions, --filter) happens after
// the fetch.
type IssueListOptions struct {
	ListOptions

	// Search is a free-text server-side filter over title and description.
	Search string

	// Status restricts the result server-side to a named status.
	Status string
}

// IssueCreateOptions is the payload of an issue create call. The ID field is
// a public, zero-valued field required by the JSON:API marshaler.
type IssueCreateOptions struct {
	ID          string  `jsonapi:"primary,issues"`
	Title       *string `jsonapi:"attr,title"`
	Description *string `jsonapi:"attr,description,omitempty"`

	Status   *Status  `jsonapi:"relation,status,omitempty"`
	Release  *Release `jsonapi:"relation,release,omitempty"`
	Parent   *Issue   `jsonapi:"relation,parent,omitempty"`
	Assignee *User    `jsonapi:"relation,assignee,omitempty"`
}

// IssueUpdateOptions is the payload of an issue update call. Nil fields are
// left untouched by the server.
type IssueUpdateOptions struct {
	ID          string  `jsonapi:"primary,issues"`
	Title       *string `jsonapi:"attr,title,omitempty"`
	Description *string `jsonapi:"attr,description,omitempty"`

	Status   *Status  `jsonapi:"relation,status,omitempty"`
	Release  *Release `jsonapi:"relation,release,omitempty"`
	Parent   *Issue   `jsonapi:"relation,parent,omitempty"`
	Assignee *User    `jsonapi:"relation,assignee,omitempty"`
}

// List returns one page of the project's issues.
func (s *IssueService) List(ctx context.Context, project string, opts *IssueListOptions) ([]*Issue, *Pagination, error) {
	if project == "" {
		return nil, nil, ErrProjectNotSet
	}

	query := listQuery(opts.ListOptions)
	if opts.Search != "" {
		query.Set("filter[search]", opts.Search)
	}
	if opts.Status != "" {
		query.Set("filter[status]", opts.Status)
	}

	doc, err := s.client.get(ctx, project, "projects/"+project+"/issues", query)
	if err != nil {
		return nil, nil, err
	}

	raw := doc.Bytes()
	models, err := jsonapi.UnmarshalManyPayload(
		bytes.NewReader(raw),
		reflect.TypeOf(new(Issue)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal issues: %w", err)
	}

	issues := make([]*Issue, 0, len(models))
	for _, m := range models {
		issue, ok := m.(*Issue)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected issue payload type %T", m)
		}
		issues = append(issues, issue)
	}

	return issues, parsePagination(raw), nil
}

// Read returns one issue by number.
func (s *IssueService) Read(ctx context.Context, project string, number int64) (*Issue, error) {
	if project == "" {
		return nil, ErrProjectNotSet
	}

	doc, err := s.client.get(ctx, project, issuePath(project, number), nil)
	if err != nil {
		return nil, err
	}

	issue := &Issue{}
	if err := jsonapi.UnmarshalPayload(bytes.NewReader(doc.Bytes()), issue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal issue: %w", err)
	}

	return issue, nil
}

// ReadRaw returns the unparsed JSON:API document for one issue. Used by the
// cmp command, which diffs server documents rather than Go structs.
func (s *IssueService) ReadRaw(ctx context.Context, project string, number int64) ([]byte, error) {
	if project == "" {
		return nil, ErrProjectNotSet
	}

	doc, err := s.client.get(ctx, project, issuePath(project, number), nil)
	if err != nil {
		return nil, err
	}

	return doc.Bytes(), nil
}

// Create creates a new issue in the project and returns the server's copy.
func (s *IssueService) Create(ctx context.Context, project string, opts IssueCreateOptions) (*Issue, error) {
	if project == "" {
		return nil, ErrProjectNotSet
	}
	if opts.Title == nil || strings.TrimSpace(*opts.Title) == "" {
		return nil, fmt.Errorf("title is required: %w", ErrInvalid)
	}

	var payload bytes.Buffer
	if err := jsonapi.MarshalPayload(&payload, &opts); err != nil {
		return nil, fmt.Errorf("failed to marshal issue: %w", err)
	}

	doc, err := s.client.do(ctx, "POST", project, "projects/"+project+"/issues", &payload)
	if err != nil {
		return nil, err
	}

	issue := &Issue{}
	if err := jsonapi.UnmarshalPayload(bytes.NewReader(doc.Bytes()), issue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created issue: %w", err)
	}

	return issue, nil
}

// Update patches an existing issue and returns the server's copy.
func (s *IssueService) Update(ctx context.Context, project string, number int64, opts IssueUpdateOptions) (*Issue, error) {
	if project == "" {
		return nil, ErrProjectNotSet
	}

	var payload bytes.Buffer
	if err := jsonapi.MarshalPayload(&payload, &opts); err != nil {
		return nil, fmt.Errorf("failed to marshal issue: %w", err)
	}

	doc, err := s.client.do(ctx, "PATCH", project, issuePath(project, number), &payload)
	if err != nil {
		return nil, err
	}

	issue := &Issue{}
	if err := jsonapi.UnmarshalPayload(bytes.NewReader(doc.Bytes()), issue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated issue: %w", err)
	}

	return issue, nil
}

// Unassign clears the issue's assignee. Clearing is a dedicated endpoint
// because the update payload cannot distinguish "leave alone" from "remove".
func (s *IssueService) Unassign(ctx context.Context, project string, number int64) error {
	if project == "" {
		return ErrProjectNotSet
	}

	_, err := s.client.do(ctx, "DELETE", project, issuePath(project, number)+"/assignee", nil)
	return err
}
