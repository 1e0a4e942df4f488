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

var rqDefaultAttrs = []string{".id", "name", "date"}

// rqCommandAction is the action handler for the "rq" subcommand. It lists
// the project's releases.
func rqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	fn := ProjectQueryFetcherFactory(
		client,
		project,
		func(ctx context.Context, project string, opts *tracker.ReleaseListOptions) (
			[]*tracker.Release,
			*tracker.Pagination,
			error,
		) {
			return client.Releases.List(ctx, project, opts)
		},
		nil,
		"list releases",
	)

	return NewQueryActionRunner(
		"rq",
		reflect.TypeOf((*tracker.Release)(nil)).Elem(),
		rqDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// rqCommandBuilder constructs the cli.Command for "rq", wiring metadata,
// flags, and action/validator handlers.
func rqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "rq",
		Usage: "release query",
		Flags: []cli.Flag{
			NewHostFlag("rq", meta.Config.Source),
			NewProjectFlag("rq", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: rqCommandAction,
		Meta:   meta,
	}).Build()
}
