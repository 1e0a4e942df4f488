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

var stqDefaultAttrs = []string{".id", "name"}

// stqCommandAction is the action handler for the "stq" subcommand. It lists
// the project's workflow statuses.
func stqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	fn := ProjectQueryFetcherFactory(
		client,
		project,
		func(ctx context.Context, project string, opts *tracker.StatusListOptions) (
			[]*tracker.Status,
			*tracker.Pagination,
			error,
		) {
			return client.Statuses.List(ctx, project, opts)
		},
		nil,
		"list statuses",
	)

	return NewQueryActionRunner(
		"stq",
		reflect.TypeOf((*tracker.Status)(nil)).Elem(),
		stqDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// stqCommandBuilder constructs the cli.Command for "stq", wiring metadata,
// flags, and action/validator handlers.
func stqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "stq",
		Usage: "status query",
		Flags: []cli.Flag{
			NewHostFlag("stq", meta.Config.Source),
			NewProjectFlag("stq", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: stqCommandAction,
		Meta:   meta,
	}).Build()
}
