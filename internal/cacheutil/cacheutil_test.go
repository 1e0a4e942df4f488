// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeHoursAgo(t *testing.T, hours int) time.Time {
	t.Helper()
	return time.Now().Add(-time.Duration(hours) * time.Hour)
}

// TestDir_WithEnvOverride verifies Dir() respects TIXCTL_CACHE_DIR with
// highest priority.
func TestDir_WithEnvOverride(t *testing.T) {
	customDir := t.TempDir()
	t.Setenv("TIXCTL_CACHE_DIR", customDir)

	result, ok := Dir()

	assert.True(t, ok)
	assert.Equal(t, customDir, result)
}

// TestDir_Fallback verifies Dir() falls back to os.UserCacheDir/tixctl when
// the env var is not set.
func TestDir_Fallback(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", "")

	result, ok := Dir()

	// Result depends on system availability of a user cache dir.
	if ok {
		assert.NotEmpty(t, result)
		assert.True(t, filepath.IsAbs(result))
	}
}

// TestEnabled covers the TIXCTL_CACHE switch.
func TestEnabled(t *testing.T) {
	t.Setenv("TIXCTL_CACHE", "")
	assert.True(t, Enabled())

	t.Setenv("TIXCTL_CACHE", "1")
	assert.True(t, Enabled())

	t.Setenv("TIXCTL_CACHE", "0")
	assert.False(t, Enabled())

	t.Setenv("TIXCTL_CACHE", "false")
	assert.False(t, Enabled())
}

// TestWriteReadRoundtrip verifies an entry written under subdirs can be read
// back by its clear-text key.
func TestWriteReadRoundtrip(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", t.TempDir())
	t.Setenv("TIXCTL_CACHE", "")

	subdirs := []string{"tix.example.com", "roadster"}
	key := "https://tix.example.com/api/v2/projects/roadster/issues?page[number]=1"
	data := []byte(`{"data":[]}`)

	require.NoError(t, Write(subdirs, key, data))

	entry, ok := Read(subdirs, key)
	require.True(t, ok)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, data, entry.Data)
	assert.NotEqual(t, key, entry.EncodedKey, "filename is hashed")
}

// TestReadMiss verifies a missing entry reports false.
func TestReadMiss(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", t.TempDir())

	_, ok := Read([]string{"tix.example.com"}, "missing")
	assert.False(t, ok)
}

// TestReadDisabled verifies reads miss when caching is disabled.
func TestReadDisabled(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", t.TempDir())
	t.Setenv("TIXCTL_CACHE", "")

	subdirs := []string{"host"}
	require.NoError(t, Write(subdirs, "key", []byte("value")))

	t.Setenv("TIXCTL_CACHE", "0")
	_, ok := Read(subdirs, "key")
	assert.False(t, ok)
}

// TestPurgeTree verifies the project subtree is removed while siblings are
// kept.
func TestPurgeTree(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", t.TempDir())
	t.Setenv("TIXCTL_CACHE", "")

	require.NoError(t, Write([]string{"host", "projA"}, "k", []byte("a")))
	require.NoError(t, Write([]string{"host", "projB"}, "k", []byte("b")))

	require.NoError(t, PurgeTree([]string{"host", "projA"}))

	_, ok := Read([]string{"host", "projA"}, "k")
	assert.False(t, ok)
	_, ok = Read([]string{"host", "projB"}, "k")
	assert.True(t, ok)
}

// TestPurgeOldEntries verifies age-based purging removes stale files.
func TestPurgeOldEntries(t *testing.T) {
	base := t.TempDir()
	t.Setenv("TIXCTL_CACHE_DIR", base)
	t.Setenv("TIXCTL_CACHE", "")

	require.NoError(t, Write([]string{"host"}, "old", []byte("x")))

	p, exists := EntryPath([]string{"host"}, "old")
	require.True(t, exists)

	// Backdate the file beyond the purge horizon.
	old := timeHoursAgo(t, 10)
	require.NoError(t, os.Chtimes(p, old, old))

	require.NoError(t, Purge(1))

	_, ok := Read([]string{"host"}, "old")
	assert.False(t, ok)
}

// TestPurgeDisabled verifies hours <= 0 is a no-op.
func TestPurgeDisabled(t *testing.T) {
	t.Setenv("TIXCTL_CACHE_DIR", t.TempDir())
	t.Setenv("TIXCTL_CACHE", "")

	require.NoError(t, Write([]string{"host"}, "keep", []byte("x")))
	require.NoError(t, Purge(0))

	_, ok := Read([]string{"host"}, "keep")
	assert.True(t, ok)
}
