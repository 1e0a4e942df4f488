// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package tracker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		ok       bool
	}{
		{name: "ok", status: 200, ok: true},
		{name: "created", status: 201, ok: true},
		{name: "no content", status: 204, ok: true},
		{name: "unauthorized", status: 401, sentinel: ErrUnauthorized},
		{name: "forbidden", status: 403, sentinel: ErrUnauthorized},
		{name: "not found", status: 404, sentinel: ErrNotFound},
		{name: "unprocessable", status: 422, sentinel: ErrInvalid},
		{name: "server error", status: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.status, []byte(tt.body))
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			if tt.sentinel != nil {
				assert.True(t, errors.Is(err, tt.sentinel))
			}
		})
	}
}

func TestCheckStatusDetail(t *testing.T) {
	body := `{"errors":[{"title":"Not Found","detail":"issue 999 does not exist"}]}`

	err := checkStatus(404, []byte(body))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "issue 999 does not exist")
}

func TestFriendly(t *testing.T) {
	ctx := ErrorContext{
		Host:      "tix.example.com",
		Project:   "roadster",
		Issue:     "42",
		Operation: "read issue",
	}

	assert.NoError(t, Friendly(nil, ctx))

	err := Friendly(ErrUnauthorized, ctx)
	assert.True(t, errors.Is(err, ErrUnauthorized))
	assert.Contains(t, err.Error(), "tixctl login")

	err = Friendly(ErrNotFound, ctx)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "issue 42")
	assert.Contains(t, err.Error(), "roadster")

	// Project-level not-found when no issue in context.
	err = Friendly(ErrNotFound, ErrorContext{Host: "tix.example.com", Project: "ghost"})
	assert.Contains(t, err.Error(), `project "ghost"`)

	// Unknown errors keep their chain.
	base := errors.New("connection reset")
	err = Friendly(base, ctx)
	assert.True(t, errors.Is(err, base))
}
