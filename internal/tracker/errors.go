// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tracker

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// Sentinel errors for API and configuration failures. These enable callers
// to detect specific conditions via errors.Is while keeping messages
// consistent.
var (
	ErrHostNotSet    = errors.New("host is not set")
	ErrProjectNotSet = errors.New("project is not set")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("resource not found")
	ErrInvalid       = errors.New("invalid request")
)

// ErrorContext carries input context for improving API error messages.
type ErrorContext struct {
	Host      string
	Project   string
	Issue     string
	Operation string // e.g., "list issues", "assign issue"
}

// checkStatus maps an HTTP response status to a sentinel error, pulling the
// server's detail text out of the JSON:API errors array when present.
func checkStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := gjson.GetBytes(body, "errors.0.detail").String()
	if detail == "" {
		detail = gjson.GetBytes(body, "errors.0.title").String()
	}

	var sentinel error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		sentinel = ErrUnauthorized
	case http.StatusNotFound:
		sentinel = ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		sentinel = ErrInvalid
	default:
		if detail == "" {
			return fmt.Errorf("unexpected response status %d", status)
		}
		return fmt.Errorf("unexpected response status %d: %s", status, detail)
	}

	if detail == "" {
		return sentinel
	}
	return fmt.Errorf("%s: %w", detail, sentinel)
}

// Friendly wraps an API error with a contextual, user-friendly message while
// preserving the original error for further inspection via errors.Is/As.
func Friendly(err error, ctx ErrorContext) error {
	if err == nil {
		return nil
	}

	host := nonEmpty(ctx.Host, "<unknown>")
	operation := nonEmpty(ctx.Operation, "request")

	switch {
	case errors.Is(err, ErrUnauthorized):
		return fmt.Errorf("%s on %s: authentication failed (401). Run 'tixctl login' or set TIXCTL_TOKEN",
			operation, host)

	case errors.Is(err, ErrNotFound):
		if ctx.Issue != "" {
			return fmt.Errorf("%s: issue %s not found in project %q on %s (404)",
				operation, ctx.Issue, nonEmpty(ctx.Project, "<unknown>"), host)
		}
		return fmt.Errorf("%s: project %q not found on %s (404)",
			operation, nonEmpty(ctx.Project, "<unknown>"), host)
	}

	// Unknown error: provide generic context and wrap
	return fmt.Errorf("%s on %s for project=%q issue=%q: %w",
		operation, host, ctx.Project, ctx.Issue, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
