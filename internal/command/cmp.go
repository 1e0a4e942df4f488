// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/differ"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

// cmpCommandAction is the action handler for the "cmp" subcommand. It diffs
// two issues named on the command line, or opens an interactive picker when
// fewer than two are given.
func cmpCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "cmp") {
		return nil
	}

	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	numbers := make([]int64, 0, 2)
	for i := 0; i < cmd.Args().Len() && len(numbers) < 2; i++ {
		number, ok := parseIssueNumber(cmd.Args().Get(i))
		if !ok {
			return fmt.Errorf("%q is not an issue number", cmd.Args().Get(i))
		}
		numbers = append(numbers, number)
	}

	if len(numbers) < 2 {
		issues, err := fetchAllIssues(ctx, cmd, client, project, nil)
		if err != nil {
			return err
		}
		picked := differ.SelectIssues(issues)
		if len(picked) != 2 {
			return fmt.Errorf("two issues are required to compare")
		}
		numbers = []int64{picked[0].Number, picked[1].Number}
	}

	docs := make([][]byte, 0, len(numbers))
	for _, number := range numbers {
		doc, err := client.Issues.ReadRaw(ctx, project, number)
		if err != nil {
			return tracker.Friendly(err, tracker.ErrorContext{
				Host:      client.Host(),
				Project:   project,
				Issue:     fmt.Sprintf("%d", number),
				Operation: "compare issues",
			})
		}
		docs = append(docs, doc)
	}

	return differ.Diff(docs, cmd.String("diff_filter"), os.Stdout)
}

// cmpCommandBuilder constructs the cli.Command for "cmp", wiring metadata,
// flags, and action/validator handlers.
func cmpCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "cmp",
		Usage:     "compare two issues",
		UsageText: "tixctl cmp [ISSUE ISSUE] [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("cmp", meta.Config.Source),
			NewProjectFlag("cmp", meta.Config.Source),
			NewTokenFlag(),
			&cli.StringFlag{
				Name:  "diff_filter",
				Usage: "comma-delimited list of keys to exclude from the diff",
				Sources: cli.ValueSourceChain{
					Chain: []cli.ValueSource{cli.EnvVar("TIXCTL_DIFF_FILTER")},
				},
			},
		},
		Action: cmpCommandAction,
	}
}
