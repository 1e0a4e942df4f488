// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/editor"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

const newIssueTemplate = `# Enter the issue. The first line becomes the title, the rest the
# description. Lines starting with '#' are ignored. An empty file
# aborts the create.
`

// newCommandAction is the action handler for the "new" subcommand. It creates
// an issue from the --title/--desc flags, or composes one in the user's
// editor when --title is absent.
func newCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "new") {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	description := cmd.String("desc")

	if title == "" {
		composed, err := editor.Compose(ctx, newIssueTemplate)
		if err != nil {
			return err
		}
		if composed == "" {
			return fmt.Errorf("empty issue, aborting")
		}
		title, description, _ = strings.Cut(composed, "\n")
		description = strings.TrimSpace(description)
	}

	opts := tracker.IssueCreateOptions{Title: &title}
	if description != "" {
		opts.Description = &description
	}

	// Resolve the relationship flags before creating anything so a bad
	// expression costs nothing.
	if expr := cmd.String("status"); expr != "" {
		if opts.Status, err = ResolveStatus(ctx, client, project, expr); err != nil {
			return err
		}
	}
	if expr := cmd.String("release"); expr != "" {
		if opts.Release, err = ResolveRelease(ctx, client, project, expr); err != nil {
			return err
		}
	}
	if expr := cmd.String("assignee"); expr != "" {
		if opts.Assignee, err = ResolveMember(ctx, client, project, expr); err != nil {
			return err
		}
	}
	if expr := cmd.String("parent"); expr != "" {
		if opts.Parent, err = ResolveParent(ctx, client, project, expr); err != nil {
			return err
		}
	}

	issue, err := client.Issues.Create(ctx, project, opts)
	if err != nil {
		return tracker.Friendly(err, tracker.ErrorContext{
			Host:      client.Host(),
			Project:   project,
			Operation: "create issue",
		})
	}

	fmt.Printf("created issue %d: %s\n", issue.Number, issue.Title)
	return nil
}

// newCommandBuilder constructs the cli.Command for "new", wiring metadata,
// flags, and action/validator handlers.
func newCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Usage:     "create an issue",
		UsageText: "tixctl new [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("new", meta.Config.Source),
			NewProjectFlag("new", meta.Config.Source),
			NewTokenFlag(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "issue title. Omit to compose in your editor",
			},
			&cli.StringFlag{
				Name:  "desc",
				Usage: "issue description",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "match expression selecting the initial status",
			},
			&cli.StringFlag{
				Name:  "release",
				Usage: "match expression selecting the release",
			},
			&cli.StringFlag{
				Name:  "assignee",
				Usage: "match expression selecting the assignee",
			},
			&cli.StringFlag{
				Name:  "parent",
				Usage: "parent issue number or match expression",
			},
		},
		Action: newCommandAction,
	}
}
