// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package filters implements client-side row filtering of query results
// using --filter expressions such as "status=open" or "number>100".
package filters
