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

// ReleaseService exposes the release operations of the API.
type ReleaseService struct {
	client *Client
}

// ReleaseListOptions are the query parameters of a release list call.
type ReleaseListOptions struct {
	ListOptions
}

// List returns one page of the project's releases.
func (s *ReleaseService) List(ctx context.Context, project string, opts *ReleaseListOptions) ([]*Release, *Pagination, error) {
	if project == "" {
		return nil, nil, ErrProjectNotSet
	}

	doc, err := s.client.get(ctx, project, "projects/"+project+"/releases", listQuery(opts.ListOptions))
	if err != nil {
		return nil, nil, err
	}

	raw := doc.Bytes()
	models, err := jsonapi.UnmarshalManyPayload(
		bytes.NewReader(raw),
		reflect.TypeOf(new(Release)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal releases: %w", err)
	}

	releases := make([]*Release, 0, len(models))
	for _, m := range models {
		release, ok := m.(*Release)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected release payload type %T", m)
		}
		releases = append(releases, release)
	}

	return releases, parsePagination(raw), nil
}
