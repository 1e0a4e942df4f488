// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

var showDefaultAttrs = []string{
	".id", "title", "description", "status", "release", "parent", "assignee",
	"created-at:created:T", "updated-at:updated:T",
}

// showCommandAction is the action handler for the "show" subcommand. It
// renders a single issue, selected by number.
func showCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "show") {
		return nil
	}
	if DumpSchemaIfRequested(cmd, reflect.TypeOf(tracker.Issue{})) {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	number, ok := parseIssueNumber(cmd.Args().First())
	if !ok {
		return fmt.Errorf("usage: tixctl show ISSUE")
	}

	errCtx := tracker.ErrorContext{
		Host:      client.Host(),
		Project:   project,
		Issue:     cmd.Args().First(),
		Operation: "show issue",
	}

	// Raw skips the struct roundtrip so the document arrives untouched.
	if cmd.String("output") == "raw" {
		doc, err := client.Issues.ReadRaw(ctx, project, number)
		if err != nil {
			return tracker.Friendly(err, errCtx)
		}
		_, _ = os.Stdout.Write(doc)
		return nil
	}

	issue, err := client.Issues.Read(ctx, project, number)
	if err != nil {
		return tracker.Friendly(err, errCtx)
	}

	attrs := BuildAttrs(cmd, showDefaultAttrs...)
	issues := []*tracker.Issue{issue}
	return EmitJSONAPISlice(issues, attrs, cmd, relationNamePostProcess(issues))
}

// showCommandBuilder constructs the cli.Command for "show", wiring metadata,
// flags, and action/validator handlers.
func showCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "show",
		Usage:     "show one issue",
		UsageText: "tixctl show ISSUE [options]",
		Flags: []cli.Flag{
			NewHostFlag("show", meta.Config.Source),
			NewProjectFlag("show", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: showCommandAction,
		Meta:   meta,
	}).Build()
}
