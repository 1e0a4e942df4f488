// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/tixctl/tixctl/internal/match"
	"github.com/tixctl/tixctl/internal/tracker"
)

// resolveOne narrows a list of resources to the single one a user-entered
// match expression selects. Zero matches and more than one match are both
// errors; mutation commands need a definite target, unlike queries where a
// multi-match is just a wider result set.
func resolveOne[T any](expr string, items []T, ref func(T) *match.Resource, kind string) (T, error) {
	var zero T

	var hits []T
	for _, item := range items {
		if match.Matches(expr, ref(item)) {
			hits = append(hits, item)
		}
	}

	switch len(hits) {
	case 1:
		return hits[0], nil
	case 0:
		return zero, fmt.Errorf("no %s matches %q", kind, expr)
	default:
		names := make([]string, 0, len(hits))
		for _, hit := range hits {
			names = append(names, ref(hit).Name)
		}
		return zero, fmt.Errorf("%q is ambiguous: matches %d %ss (%s)",
			expr, len(hits), kind, strings.Join(names, ", "))
	}
}

// ResolveStatus resolves a status match expression to the project's single
// matching workflow status.
func ResolveStatus(ctx context.Context, client *tracker.Client, project, expr string) (*tracker.Status, error) {
	statuses, _, err := client.Statuses.List(ctx, project, &tracker.StatusListOptions{
		ListOptions: tracker.DefaultListOptions,
	})
	if err != nil {
		return nil, tracker.Friendly(err, ProjectQueryErrorContext(client, project, "list statuses"))
	}

	return resolveOne(expr, statuses, (*tracker.Status).Ref, "status")
}

// ResolveRelease resolves a release match expression to the project's single
// matching release.
func ResolveRelease(ctx context.Context, client *tracker.Client, project, expr string) (*tracker.Release, error) {
	releases, _, err := client.Releases.List(ctx, project, &tracker.ReleaseListOptions{
		ListOptions: tracker.DefaultListOptions,
	})
	if err != nil {
		return nil, tracker.Friendly(err, ProjectQueryErrorContext(client, project, "list releases"))
	}

	return resolveOne(expr, releases, (*tracker.Release).Ref, "release")
}

// ResolveMember resolves a member match expression to the project's single
// matching member.
func ResolveMember(ctx context.Context, client *tracker.Client, project, expr string) (*tracker.User, error) {
	members, _, err := client.Members.List(ctx, project, &tracker.MemberListOptions{
		ListOptions: tracker.DefaultListOptions,
	})
	if err != nil {
		return nil, tracker.Friendly(err, ProjectQueryErrorContext(client, project, "list members"))
	}

	return resolveOne(expr, members, (*tracker.User).Ref, "member")
}

// ResolveParent resolves a parent expression to a single issue. A purely
// numeric expression is read directly rather than pulling every issue down.
func ResolveParent(ctx context.Context, client *tracker.Client, project, expr string) (*tracker.Issue, error) {
	if number, ok := parseIssueNumber(expr); ok {
		issue, err := client.Issues.Read(ctx, project, number)
		if err != nil {
			return nil, tracker.Friendly(err, tracker.ErrorContext{
				Host:      client.Host(),
				Project:   project,
				Issue:     expr,
				Operation: "read parent issue",
			})
		}
		return issue, nil
	}

	issues, err := fetchAllIssues(ctx, nil, client, project, nil)
	if err != nil {
		return nil, err
	}

	return resolveOne(expr, issues, (*tracker.Issue).Ref, "issue")
}
