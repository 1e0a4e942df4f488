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

var mqDefaultAttrs = []string{".id", "name", "email"}

// mqCommandAction is the action handler for the "mq" subcommand. It lists
// the project's members.
func mqCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, project, err := InitProjectQuery(ctx, cmd)
	if err != nil {
		return err
	}

	fn := ProjectQueryFetcherFactory(
		client,
		project,
		func(ctx context.Context, project string, opts *tracker.MemberListOptions) (
			[]*tracker.User,
			*tracker.Pagination,
			error,
		) {
			return client.Members.List(ctx, project, opts)
		},
		nil,
		"list members",
	)

	return NewQueryActionRunner(
		"mq",
		reflect.TypeOf((*tracker.User)(nil)).Elem(),
		mqDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// mqCommandBuilder constructs the cli.Command for "mq", wiring metadata,
// flags, and action/validator handlers.
func mqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:  "mq",
		Usage: "member query",
		Flags: []cli.Flag{
			NewHostFlag("mq", meta.Config.Source),
			NewProjectFlag("mq", meta.Config.Source),
			NewTokenFlag(),
		},
		Action: mqCommandAction,
		Meta:   meta,
	}).Build()
}
