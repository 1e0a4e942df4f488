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

// MemberService exposes the project membership operations of the API.
type MemberService struct {
	client *Client
}

// MemberListOptions are the query parameters of a member list call.
type MemberListOptions struct {
	ListOptions
}

// List returns one page of the project's members.
func (s *MemberService) List(ctx context.Context, project string, opts *MemberListOptions) ([]*User, *Pagination, error) {
	if project == "" {
		return nil, nil, ErrProjectNotSet
	}

	doc, err := s.client.get(ctx, project, "projects/"+project+"/members", listQuery(opts.ListOptions))
	if err != nil {
		return nil, nil, err
	}

	raw := doc.Bytes()
	models, err := jsonapi.UnmarshalManyPayload(
		bytes.NewReader(raw),
		reflect.TypeOf(new(User)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal members: %w", err)
	}

	users := make([]*User, 0, len(models))
	for _, m := range models {
		user, ok := m.(*User)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected member payload type %T", m)
		}
		users = append(users, user)
	}

	return users, parsePagination(raw), nil
}
