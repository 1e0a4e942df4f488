// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"strconv"
	"time"

	"github.com/tixctl/tixctl/internal/match"
)

// Project is a container for issues, releases and members. The primary ID is
// the project's URL slug.
type Project struct {
	ID          string `jsonapi:"primary,projects"`
	Name        string `jsonapi:"attr,name"`
	Description string `jsonapi:"attr,description,omitempty"`
}

// Issue is a single ticket. The primary ID is the issue number rendered as a
// string, so ".id" in --attrs is the number users see in the tracker UI.
type Issue struct {
	ID          string    `jsonapi:"primary,issues"`
	Number      int64     `jsonapi:"attr,number"`
	Title       string    `jsonapi:"attr,title"`
	Description string    `jsonapi:"attr,description,omitempty"`
	CreatedAt   time.Time `jsonapi:"attr,created-at,iso8601"`
	UpdatedAt   time.Time `jsonapi:"attr,updated-at,iso8601"`

	Status   *Status  `jsonapi:"relation,status,omitempty"`
	Release  *Release `jsonapi:"relation,release,omitempty"`
	Parent   *Issue   `jsonapi:"relation,parent,omitempty"`
	Assignee *User    `jsonapi:"relation,assignee,omitempty"`
}

// Status is a workflow state (open, inprogress, resolved, ...).
type Status struct {
	ID   string `jsonapi:"primary,statuses"`
	Name string `jsonapi:"attr,name"`
}

// Release is a named milestone issues can be scheduled into.
type Release struct {
	ID   string `jsonapi:"primary,releases"`
	Name string `jsonapi:"attr,name"`
	Date string `jsonapi:"attr,date,omitempty"`
}

// User is a project member.
type User struct {
	ID    string `jsonapi:"primary,users"`
	Name  string `jsonapi:"attr,name"`
	Email string `jsonapi:"attr,email,omitempty"`
}

// The Ref methods adapt tracker resources to the identity the match package
// tests against. All of them are nil-safe and return nil for a nil receiver
// so that the matcher's "none" keyword sees a genuinely absent resource,
// never a present-but-empty one.

// Ref returns the matchable identity of the status.
func (s *Status) Ref() *match.Resource {
	if s == nil {
		return nil
	}
	return &match.Resource{ID: parseID(s.ID), Name: s.Name}
}

// Ref returns the matchable identity of the release.
func (r *Release) Ref() *match.Resource {
	if r == nil {
		return nil
	}
	return &match.Resource{ID: parseID(r.ID), Name: r.Name}
}

// Ref returns the matchable identity of the user.
func (u *User) Ref() *match.Resource {
	if u == nil {
		return nil
	}
	return &match.Resource{ID: parseID(u.ID), Name: u.Name}
}

// Ref returns the matchable identity of the issue, used when it appears as
// another issue's parent. The identifier is the issue number and the name is
// the title, so both "--parent 120" and "--parent login" select children of
// issue 120 "Login rework".
func (i *Issue) Ref() *match.Resource {
	if i == nil {
		return nil
	}
	res := &match.Resource{Name: i.Title}
	if i.Number != 0 {
		n := i.Number
		res.ID = &n
	} else {
		res.ID = parseID(i.ID)
	}
	return res
}

// parseID converts a JSON:API string id to the numeric identifier the
// matcher compares against. Non-numeric ids (slugs) just have no numeric
// identity.
func parseID(id string) *int64 {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
