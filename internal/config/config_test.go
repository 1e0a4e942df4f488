// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a temporary config file and points TIXCTL_CFG_FILE at
// it, reloading the global Config.
func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tixctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TIXCTL_CFG_FILE", path)
	_, err := Load()
	require.NoError(t, err)
}

func TestGetString(t *testing.T) {
	writeConfig(t, `
host: tix.example.com
project: roadster
colors:
  title: "#f6be00"
`)

	v, err := GetString("host")
	require.NoError(t, err)
	assert.Equal(t, "tix.example.com", v)

	v, err = GetString("colors.title")
	require.NoError(t, err)
	assert.Equal(t, "#f6be00", v)

	// Missing key with default.
	v, err = GetString("editor", "vi")
	require.NoError(t, err)
	assert.Equal(t, "vi", v)

	// Missing key without default is an error.
	_, err = GetString("editor")
	assert.Error(t, err)
}

func TestGetStringNamespaced(t *testing.T) {
	writeConfig(t, `
project: roadster
iq:
  project: sidecar
`)
	Config.Namespace = "iq"
	defer func() { Config.Namespace = "" }()

	v, err := GetString("project")
	require.NoError(t, err)
	assert.Equal(t, "sidecar", v, "namespaced key wins")
}

func TestGetInt(t *testing.T) {
	writeConfig(t, `
cache:
  clean: 12
`)

	v, err := GetInt("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	v, err = GetInt("padding", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetStringSlice(t *testing.T) {
	writeConfig(t, `
iq:
  defaults:
    - "--titles"
    - "--sort number"
`)

	v, err := GetStringSlice("iq.defaults")
	require.NoError(t, err)
	assert.Equal(t, []string{"--titles", "--sort number"}, v)

	_, err = GetStringSlice("iq.nope")
	assert.Error(t, err)
}

func TestGetIntNotAnInt(t *testing.T) {
	writeConfig(t, `
cache:
  clean: soon
`)

	_, err := GetInt("cache.clean")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("TIXCTL_CFG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}
