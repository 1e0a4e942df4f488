// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// segmentRegex splits a path segment into its key and optional index. A bare
// "[]" selects the sole element of a single-element array; "[n]" selects by
// position; "[*]" keeps the whole array.
var segmentRegex = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d|\*)?\])?$`)

// Driller navigates JSON using a flexible dot path supporting arrays.
func Driller(jsonData string, path string) gjson.Result {
	current := gjson.Parse(jsonData)

	for _, segment := range strings.Split(path, ".") {
		parts := segmentRegex.FindStringSubmatch(segment)
		if parts == nil {
			// Invalid path segment.
			return gjson.Result{}
		}

		val := current.Get(parts[1])

		index := -1
		if parts[3] != "" && parts[3] != "*" {
			i, err := strconv.Atoi(parts[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		if val.IsArray() {
			arr := val.Array()
			switch {
			case index >= 0 && index < len(arr):
				val = arr[index]
			case index == -1 && parts[3] != "*" && len(arr) == 1:
				// An unindexed single-element array collapses to its element.
				val = arr[0]
			case index >= len(arr):
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
