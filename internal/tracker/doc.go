// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package tracker is a minimal JSON:API client for the ticket server. It
// exposes typed resources (projects, issues, releases, members, statuses)
// and the small set of operations tixctl needs: list, read, create, update
// and assign. GET responses are cached on disk per host and project.
package tracker
