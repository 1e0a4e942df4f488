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

// StatusService exposes the workflow status operations of the API.
type StatusService struct {
	client *Client
}

// StatusListOptions are the query parameters of a status list call.
type StatusListOptions struct {
	ListOptions
}

// List returns one page of the project's workflow statuses.
func (s *StatusService) List(ctx context.Context, project string, opts *StatusListOptions) ([]*Status, *Pagination, error) {
	if project == "" {
		return nil, nil, ErrProjectNotSet
	}

	doc, err := s.client.get(ctx, project, "projects/"+project+"/statuses", listQuery(opts.ListOptions))
	if err != nil {
		return nil, nil, err
	}

	raw := doc.Bytes()
	models, err := jsonapi.UnmarshalManyPayload(
		bytes.NewReader(raw),
		reflect.TypeOf(new(Status)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal statuses: %w", err)
	}

	statuses := make([]*Status, 0, len(models))
	for _, m := range models {
		status, ok := m.(*Status)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected status payload type %T", m)
		}
		statuses = append(statuses, status)
	}

	return statuses, parsePagination(raw), nil
}
