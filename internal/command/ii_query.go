// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/tixctl/tixctl/internal/match"
	"github.com/tixctl/tixctl/internal/tracker"
)

// processIssueQuery evaluates one console query against the loaded issues and
// returns the rendered result. Queries come in two shapes:
//
//	TEXT         match expression applied to the issue itself
//	FIELD:TEXT   match expression applied to a relationship of the issue,
//	             where FIELD is status, release, assignee or parent
//
// "count" reports the issue total without listing anything.
func processIssueQuery(issues []*tracker.Issue, query string) string {
	query = strings.TrimSpace(query)

	if query == "count" {
		return fmt.Sprintf("%d issues", len(issues))
	}

	field, expr := splitFieldQuery(query)
	if _, ok := fieldRef(&tracker.Issue{}, field); !ok {
		return fmt.Sprintf("unknown field %q. Try status, release, assignee or parent.", field)
	}

	var hits []*tracker.Issue
	for _, issue := range issues {
		resource, _ := fieldRef(issue, field)
		if match.Matches(expr, resource) {
			hits = append(hits, issue)
		}
	}

	if len(hits) == 0 {
		return "No issues found."
	}

	var b strings.Builder
	for _, issue := range hits {
		fmt.Fprintf(&b, "%6d  %-48.48s %s\n", issue.Number, issue.Title, relationName(issue.Status))
	}
	fmt.Fprintf(&b, "%d of %d issues", len(hits), len(issues))
	return b.String()
}

// splitFieldQuery separates an optional FIELD: or FIELD= prefix from the
// match expression. No separator means the expression targets the issue.
func splitFieldQuery(query string) (string, string) {
	idx := strings.IndexAny(query, ":=")
	if idx < 0 {
		return "", query
	}
	return strings.TrimSpace(query[:idx]), strings.TrimSpace(query[idx+1:])
}

// fieldRef returns the match resource a field name selects on an issue. The
// empty field targets the issue itself.
func fieldRef(issue *tracker.Issue, field string) (*match.Resource, bool) {
	switch strings.ToLower(field) {
	case "":
		return issue.Ref(), true
	case "status":
		return issue.Status.Ref(), true
	case "release":
		return issue.Release.Ref(), true
	case "assignee":
		return issue.Assignee.Ref(), true
	case "parent":
		return issue.Parent.Ref(), true
	default:
		return nil, false
	}
}

// relationName is a display helper tolerant of absent relationships.
func relationName(status *tracker.Status) string {
	if status == nil {
		return "-"
	}
	return status.Name
}
