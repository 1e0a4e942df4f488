// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package editor launches the user's editor to compose issue text.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/tixctl/tixctl/internal/config"
	"github.com/tixctl/tixctl/internal/log"
)

// Compose opens the user's editor seeded with initial content and returns
// what they wrote. Lines starting with '#' are stripped, so the seed can
// carry instructions the way git commit templates do.
func Compose(ctx context.Context, initial string) (string, error) {
	f, err := os.CreateTemp("", "tixctl-*.md")
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	editor := resolveEditor()
	log.Debugf("editor resolved: editor=%s", editor)

	cmd := exec.CommandContext(ctx, editor, f.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		return "", err
	}

	return StripComments(string(data)), nil
}

// StripComments removes '#' comment lines and trims surrounding whitespace.
func StripComments(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// resolveEditor picks the editor to launch: TIXCTL_EDITOR, then the config
// editor key, then VISUAL/EDITOR, then vi.
func resolveEditor() string {
	if e, ok := os.LookupEnv("TIXCTL_EDITOR"); ok && e != "" {
		return e
	}

	if e, err := config.GetString("editor"); err == nil && e != "" {
		return e
	}

	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}

	return "vi"
}
