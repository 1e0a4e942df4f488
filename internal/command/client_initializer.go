// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/config"
	"github.com/tixctl/tixctl/internal/creds"
	"github.com/tixctl/tixctl/internal/tracker"
)

// ProjectListFetcher[T, O] is the signature for a function that performs
// the actual API list call for a project-scoped resource type. It takes the
// context, project, options (mutable), and returns items, pagination, or
// error. T is the result type (e.g., *tracker.Issue), O is the options type
// (e.g., tracker.IssueListOptions).
type ProjectListFetcher[T, O any] func(
	context.Context,
	string,
	*O,
) ([]T, *tracker.Pagination, error)

// InitQuery builds the API client for a command from its host/token flags.
// Host-only commands (pq, login) use this directly.
func InitQuery(ctx context.Context, cmd *cli.Command) (*tracker.Client, error) {
	host := cmd.String("host")

	client, err := tracker.NewClient(host, ResolveToken(cmd, host))
	if err != nil {
		return nil, err
	}
	log.Debugf("client: %v", client.BaseURL)

	return client, nil
}

// InitProjectQuery builds the API client and resolves the target project for
// project-scoped commands.
func InitProjectQuery(ctx context.Context, cmd *cli.Command) (*tracker.Client, string, error) {
	client, err := InitQuery(ctx, cmd)
	if err != nil {
		return nil, "", err
	}

	project := cmd.String("project")
	if project == "" {
		return nil, "", tracker.ErrProjectNotSet
	}

	return client, project, nil
}

// ResolveToken picks the API token: the --token flag (which also sources
// TIXCTL_TOKEN), then stored credentials for the host, then the config file's
// token key. An empty result is allowed; the server will reject it with a
// clearer message than we could invent here.
func ResolveToken(cmd *cli.Command, host string) string {
	if t := cmd.String("token"); t != "" {
		return t
	}

	if t, err := creds.Token(host, nil); err == nil {
		return t
	}

	if t, err := config.GetString("token"); err == nil {
		return t
	}

	return ""
}

// ProjectQueryErrorContext is a helper to construct tracker.ErrorContext for
// project-scoped queries (iq, rq, mq, stq).
func ProjectQueryErrorContext(
	client *tracker.Client,
	project string,
	operation string,
) tracker.ErrorContext {
	return tracker.ErrorContext{
		Host:      client.Host(),
		Project:   project,
		Operation: operation,
	}
}
