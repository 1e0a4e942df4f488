// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/jsonapi"
)

// ProjectService exposes the project operations of the API.
type ProjectService struct {
	client *Client
}

// ProjectListOptions are the query parameters of a project list call.
type ProjectListOptions struct {
	ListOptions
}

// List returns one page of the projects visible to the token.
func (s *ProjectService) List(ctx context.Context, opts *ProjectListOptions) ([]*Project, *Pagination, error) {
	doc, err := s.client.get(ctx, "", "projects", listQuery(opts.ListOptions))
	if err != nil {
		return nil, nil, err
	}

	raw := doc.Bytes()
	models, err := jsonapi.UnmarshalManyPayload(
		bytes.NewReader(raw),
		reflect.TypeOf(new(Project)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}

	projects := make([]*Project, 0, len(models))
	for _, m := range models {
		project, ok := m.(*Project)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected project payload type %T", m)
		}
		projects = append(projects, project)
	}

	return projects, parsePagination(raw), nil
}
