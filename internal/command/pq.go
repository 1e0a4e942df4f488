// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

var pqDefaultAttrs = []string{".id", "name", "description"}

// pqCommandAction is the action handler for the "pq" subcommand. It lists
// the projects visible to the token, supports --tldr/--schema short-circuit
// behavior, and emits output per common flags.
func pqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, err := InitQuery(ctx, cmd)
	if err != nil {
		return err
	}

	fn := func(ctx context.Context, cmd *cli.Command) ([]*tracker.Project, error) {
		options := tracker.ProjectListOptions{
			ListOptions: tracker.DefaultListOptions,
		}
		return PaginateWithOptions(
			ctx,
			cmd,
			&options,
			func(ctx context.Context, opts *tracker.ProjectListOptions) (
				[]*tracker.Project,
				*tracker.Pagination,
				error,
			) {
				projects, pagination, err := client.Projects.List(ctx, opts)
				if err != nil {
					ctxErr := ProjectQueryErrorContext(
						client,
						"",
						"list projects",
					)
					return nil, nil, tracker.Friendly(
						err,
						ctxErr,
					)
				}
				return projects, pagination, nil
			},
			nil,
		)
	}

	return NewQueryActionRunner(
		"pq",
		reflect.TypeOf((*tracker.Project)(nil)).Elem(),
		pqDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// pqCommandBuilder constructs the cli.Command for "pq", wiring metadata,
// flags, and action/validator handlers.
func pqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "pq",
		Usage: "project query",
		Flags: []cli.Flag{
			NewHostFlag("pq", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: pqCommandAction,
		Meta:   meta,
	}).Build()
}
