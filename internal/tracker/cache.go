// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"github.com/tixctl/tixctl/internal/cacheutil"
	"github.com/tixctl/tixctl/internal/config"
)

// The response cache is organized first by the server hostname and then by
// the project slug. The key (the full request URL) is hashed and used as the
// filename.

// CacheReader reads the cache entry for the given key, if it exists. If the
// cache is disabled, or the entry does not exist, the second return value
// will be false.
func CacheReader(c *Client, project, key string) (*cacheutil.Entry, bool) {
	return cacheutil.Read(cacheSubdirs(c, project), key)
}

// CacheWriter stores a response body under the given key.
func CacheWriter(c *Client, project, key string, data []byte) error {
	return cacheutil.Write(cacheSubdirs(c, project), key, data)
}

// PurgeCache removes entries older than the configured cache.clean horizon.
func PurgeCache() error {
	cleanHours, _ := config.GetInt("cache.clean")
	return cacheutil.Purge(cleanHours)
}

// PurgeProject drops every cached response for the project. Called after
// mutations so list and show queries don't serve stale pages.
func PurgeProject(c *Client, project string) error {
	return cacheutil.PurgeTree(cacheSubdirs(c, project))
}

func cacheSubdirs(c *Client, project string) []string {
	subdirs := []string{c.host}
	if project != "" {
		subdirs = append(subdirs, project)
	}
	return subdirs
}
