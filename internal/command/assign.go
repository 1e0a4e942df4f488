// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

// assignCommandAction is the action handler for the "assign" subcommand. It
// assigns an issue to the member a match expression selects, or clears the
// assignee when the expression is "none" or "-".
func assignCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "assign") {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	number, ok := parseIssueNumber(cmd.Args().First())
	if !ok || cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: tixctl assign ISSUE ASSIGNEE")
	}
	expr := cmd.Args().Get(1)

	errCtx := tracker.ErrorContext{
		Host:      client.Host(),
		Project:   project,
		Issue:     cmd.Args().First(),
		Operation: "assign issue",
	}

	if expr == "none" || expr == "-" {
		if err := client.Issues.Unassign(ctx, project, number); err != nil {
			return tracker.Friendly(err, errCtx)
		}
		fmt.Printf("issue %d unassigned\n", number)
		return nil
	}

	member, err := ResolveMember(ctx, client, project, expr)
	if err != nil {
		return err
	}

	issue, err := client.Issues.Update(ctx, project, number, tracker.IssueUpdateOptions{
		ID:       cmd.Args().First(),
		Assignee: member,
	})
	if err != nil {
		return tracker.Friendly(err, errCtx)
	}

	fmt.Printf("issue %d assigned to %s\n", issue.Number, member.Name)
	return nil
}

// assignCommandBuilder constructs the cli.Command for "assign", wiring
// metadata, flags, and action/validator handlers.
func assignCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "assign",
		Usage:     "assign an issue to a member",
		UsageText: "tixctl assign ISSUE ASSIGNEE [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("assign", meta.Config.Source),
			NewProjectFlag("assign", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: assignCommandAction,
	}
}
