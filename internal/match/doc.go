// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package match evaluates resource filter expressions. An expression is one
// or more |-separated clauses, each optionally negated with a leading !, and
// selects issues by the identity of a related resource (status, release,
// parent, assignee).
package match
