// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitApp_Commands(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tixctl", "iq"})
	require.NoError(t, err)

	assert.Equal(t, "tixctl", app.Name)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{
		"pq", "iq", "rq", "mq", "stq",
		"show", "new", "assign", "up", "cmp",
		"ii", "login", "completion",
	}, names)
}

func TestInitApp_FlagsSorted(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"tixctl", "iq"})
	require.NoError(t, err)

	for _, cmd := range app.Commands {
		for i := 1; i < len(cmd.Flags); i++ {
			prev := cmd.Flags[i-1].Names()[0]
			cur := cmd.Flags[i].Names()[0]
			assert.LessOrEqual(t, prev, cur, "%s flags out of order", cmd.Name)
		}
	}
}

func TestInitApp_FlagNamespaceIgnored(t *testing.T) {
	// A leading flag must not be mistaken for the subcommand namespace.
	app, err := InitApp(context.Background(), []string{"tixctl", "--help"})
	require.NoError(t, err)
	assert.NotNil(t, app)
}
