// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/filters"
	"github.com/tixctl/tixctl/internal/match"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

var iqDefaultAttrs = []string{
	".id", "title", "status", "release", "assignee", "created-at:created:T",
}

// iqCommandAction is the action handler for the "iq" subcommand. It lists the
// project's issues, narrows them with the resource match flags
// (--status/--release/--parent/--assignee), and emits output per common flags.
func iqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	fn := func(ctx context.Context, cmd *cli.Command) ([]*tracker.Issue, error) {
		issues, err := fetchAllIssues(ctx, cmd, client, project, iqServerSideFilterAugmenter)
		if err != nil {
			return nil, err
		}
		issues = filterIssuesByResources(issues, resourceExprs{
			Status:   cmd.String("status"),
			Release:  cmd.String("release"),
			Parent:   cmd.String("parent"),
			Assignee: cmd.String("assignee"),
		})
		if limit := cmd.Int("limit"); limit > 0 && len(issues) > limit {
			issues = issues[:limit]
		}
		return issues, nil
	}

	runner := NewQueryActionRunner(
		"iq",
		reflect.TypeOf((*tracker.Issue)(nil)).Elem(),
		iqDefaultAttrs,
		fn,
	)
	runner.PostProcess = relationNamePostProcess

	return runner.Run(ctx, cmd)
}

// resourceExprs bundles the per-relationship match expressions of a query.
type resourceExprs struct {
	Status   string
	Release  string
	Parent   string
	Assignee string
}

// filterIssuesByResources keeps the issues whose related resources satisfy
// every provided match expression. Blank expressions match everything, so an
// iq with no resource flags passes the list through untouched.
func filterIssuesByResources(issues []*tracker.Issue, exprs resourceExprs) []*tracker.Issue {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var kept []*tracker.Issue
	for _, issue := range issues {
		if !match.Matches(exprs.Status, issue.Status.Ref()) {
			continue
		}
		if !match.Matches(exprs.Release, issue.Release.Ref()) {
			continue
		}
		if !match.Matches(exprs.Parent, issue.Parent.Ref()) {
			continue
		}
		if !match.Matches(exprs.Assignee, issue.Assignee.Ref()) {
			continue
		}
		kept = append(kept, issue)
	}
	return kept
}

// relationNamePostProcess fills the status/release/parent/assignee row
// columns with the related resource names. Relationships ride in the JSON:API
// document as linkage objects, not attributes, so the row pipeline can't
// drill to them; the rows are keyed back to issues by primary id.
func relationNamePostProcess(issues []*tracker.Issue) func([]map[string]interface{}) error {
	byID := make(map[string]*tracker.Issue, len(issues))
	for _, issue := range issues {
		byID[issue.ID] = issue
	}

	return func(rows []map[string]interface{}) error {
		for _, row := range rows {
			id, ok := row["id"].(string)
			if !ok {
				continue
			}
			issue, ok := byID[id]
			if !ok {
				continue
			}

			if issue.Status != nil {
				row["status"] = issue.Status.Name
			}
			if issue.Release != nil {
				row["release"] = issue.Release.Name
			}
			if issue.Assignee != nil {
				row["assignee"] = issue.Assignee.Name
			}
			if issue.Parent != nil {
				row["parent"] = strconv.FormatInt(issue.Parent.Number, 10)
			}
		}
		return nil
	}
}

// iqServerSideFilterAugmenter augments the IssueListOptions with server-side
// filters: the --search flag and any _-prefixed keys from --filter.
func iqServerSideFilterAugmenter(
	_ context.Context,
	cmd *cli.Command,
	opts *tracker.IssueListOptions,
) error {

	if search := cmd.String("search"); search != "" {
		opts.Search = search
	}

	spec := cmd.String("filter")
	filterList := filters.BuildFilters(spec)

	for _, f := range filterList {
		// We only care about server-side filters.
		if !f.ServerSide {
			continue
		}

		if f.Key == "status" {
			opts.Status = f.Value
		}
		if f.Key == "search" {
			opts.Search = f.Value
		}
	}

	log.Debugf("opts after augmentation: %+v", opts)
	return nil
}

// fetchAllIssues pages through the project's issues and returns the whole
// set.
func fetchAllIssues(
	ctx context.Context,
	cmd *cli.Command,
	client *tracker.Client,
	project string,
	augmenter Augmenter[tracker.IssueListOptions],
) ([]*tracker.Issue, error) {
	fetch := ProjectQueryFetcherFactory(
		client,
		project,
		func(ctx context.Context, project string, opts *tracker.IssueListOptions) (
			[]*tracker.Issue,
			*tracker.Pagination,
			error,
		) {
			return client.Issues.List(ctx, project, opts)
		},
		augmenter,
		"list issues",
	)
	return fetch(ctx, cmd)
}

// parseIssueNumber reads a positive issue number from a user-entered string.
func parseIssueNumber(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// iqCommandBuilder constructs the cli.Command for "iq", wiring metadata,
// flags, and action/validator handlers.
func iqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "iq",
		Usage: "issue query",
		Flags: []cli.Flag{
			NewHostFlag("iq", meta.Config.Source),
			NewProjectFlag("iq", meta.Config.Source),
			NewTokenFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "limit issues returned",
				Value: 99999,
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "match expression applied to each issue's status",
			},
			&cli.StringFlag{
				Name:  "release",
				Usage: "match expression applied to each issue's release",
			},
			&cli.StringFlag{
				Name:  "parent",
				Usage: "match expression applied to each issue's parent issue",
			},
			&cli.StringFlag{
				Name:  "assignee",
				Usage: "match expression applied to each issue's assignee",
			},
			&cli.StringFlag{
				Name:  "search",
				Usage: "server-side free-text search over title and description",
			},
		},
		Action: iqCommandAction,
		Meta:   meta,
	}).Build()
}
