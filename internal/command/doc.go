// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the tixctl subcommands, their flags and the shared
// query plumbing (pagination, attribute shaping, output emission).
package command
