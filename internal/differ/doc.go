// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package differ renders a diff between two issue documents and provides the
// interactive picker used to choose them.
package differ
