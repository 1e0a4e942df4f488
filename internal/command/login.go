// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/creds"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/tracker"
)

// loginCommandAction is the action handler for the "login" subcommand. It
// stores an API token for a host in the credentials file, optionally
// encrypted with a passphrase, so later commands can run without --token.
func loginCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "login") {
		return nil
	}

	host := cmd.String("host")
	if host == "" {
		return tracker.ErrHostNotSet
	}

	if cmd.Bool("forget") {
		if err := creds.Forget(host); err != nil {
			return err
		}
		fmt.Printf("credential for %s forgotten\n", host)
		return nil
	}

	token := cmd.String("token")
	if token == "" {
		var err error
		if token, err = creds.GetToken(); err != nil {
			return err
		}
	}
	if token == "" {
		return fmt.Errorf("no token entered")
	}

	var passphrase string
	if cmd.Bool("encrypt") {
		var err error
		if passphrase, err = creds.GetPassphrase(); err != nil {
			return err
		}
		if passphrase == "" {
			return fmt.Errorf("no passphrase entered")
		}
	}

	if err := creds.Store(host, token, passphrase); err != nil {
		return err
	}

	fmt.Printf("credential for %s stored\n", host)
	return nil
}

// loginCommandBuilder constructs the cli.Command for "login", wiring
// metadata, flags, and action/validator handlers.
func loginCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "store an API token for a host",
		UsageText: "tixctl login [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: []cli.Flag{
			tldrFlag,
			NewHostFlag("login", meta.Config.Source),
			NewTokenFlag(),
			&cli.BoolFlag{
				Name:  "encrypt",
				Usage: "encrypt the stored token with a passphrase",
			},
			&cli.BoolFlag{
				Name:  "forget",
				Usage: "remove the stored credential for the host",
			},
		},
		Action: loginCommandAction,
	}
}
