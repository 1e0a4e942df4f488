// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package driller extracts values from raw JSON documents using dot paths
// with optional array indexing, e.g. "relationships.status.data.id" or
// "labels[0]".
package driller
