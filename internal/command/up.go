// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/editor"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

// upCommandAction is the action handler for the "up" subcommand. It patches
// the fields of an existing issue. Flags that are not set are left alone.
func upCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "up") {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	number, ok := parseIssueNumber(cmd.Args().First())
	if !ok {
		return fmt.Errorf("usage: tixctl up ISSUE [options]")
	}

	opts := tracker.IssueUpdateOptions{ID: cmd.Args().First()}
	touched := false

	if cmd.IsSet("title") {
		title := cmd.String("title")
		opts.Title = &title
		touched = true
	}
	if cmd.IsSet("desc") {
		description := cmd.String("desc")
		opts.Description = &description
		touched = true
	}
	if cmd.Bool("edit") {
		current, err := client.Issues.Read(ctx, project, number)
		if err != nil {
			return tracker.Friendly(err, tracker.ErrorContext{
				Host:      client.Host(),
				Project:   project,
				Issue:     cmd.Args().First(),
				Operation: "read issue",
			})
		}
		composed, err := editor.Compose(ctx, current.Description)
		if err != nil {
			return err
		}
		opts.Description = &composed
		touched = true
	}
	if expr := cmd.String("status"); expr != "" {
		if opts.Status, err = ResolveStatus(ctx, client, project, expr); err != nil {
			return err
		}
		touched = true
	}
	if expr := cmd.String("release"); expr != "" {
		if opts.Release, err = ResolveRelease(ctx, client, project, expr); err != nil {
			return err
		}
		touched = true
	}
	if expr := cmd.String("parent"); expr != "" {
		if opts.Parent, err = ResolveParent(ctx, client, project, expr); err != nil {
			return err
		}
		touched = true
	}

	if !touched {
		return fmt.Errorf("nothing to update: set at least one of --title, --desc, --edit, --status, --release, --parent")
	}

	issue, err := client.Issues.Update(ctx, project, number, opts)
	if err != nil {
		return tracker.Friendly(err, tracker.ErrorContext{
			Host:      client.Host(),
			Project:   project,
			Issue:     cmd.Args().First(),
			Operation: "update issue",
		})
	}

	fmt.Printf("updated issue %d: %s\n", issue.Number, issue.Title)
	return nil
}

// upCommandBuilder constructs the cli.Command for "up", wiring metadata,
// flags, and action/validator handlers.
func upCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "up",
		Usage:     "update an issue",
		UsageText: "tixctl up ISSUE [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("up", meta.Config.Source),
			NewProjectFlag("up", meta.Config.Source),
			NewTokenFlag(),
			&cli.StringFlag{
				Name:  "title",
				Usage: "replacement title",
			},
			&cli.StringFlag{
				Name:  "desc",
				Usage: "replacement description",
			},
			&cli.BoolFlag{
				Name:  "edit",
				Usage: "edit the current description in your editor",
			},
			&cli.StringFlag{
				Name:  "status",
				Usage: "match expression selecting the new status",
			},
			&cli.StringFlag{
				Name:  "release",
				Usage: "match expression selecting the new release",
			},
			&cli.StringFlag{
				Name:  "parent",
				Usage: "parent issue number or match expression",
			},
		},
		Action: upCommandAction,
	}
}
