// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package creds stores API tokens per host, optionally encrypted at rest
// with a passphrase-derived key.
package creds
