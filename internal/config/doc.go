// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the tixctl.yaml configuration file and provides
// typed getters over its dotted key paths.
package config
