// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessIssueQuery_BareText(t *testing.T) {
	got := processIssueQuery(testIssues(), "login")
	assert.Contains(t, got, "Login rework")
	assert.Contains(t, got, "Login button misaligned")
	assert.NotContains(t, got, "Crash on save")
	assert.Contains(t, got, "2 of 4 issues")
}

func TestProcessIssueQuery_ByNumber(t *testing.T) {
	got := processIssueQuery(testIssues(), "102")
	assert.Contains(t, got, "Signup flow broken")
	assert.Contains(t, got, "1 of 4 issues")
}

func TestProcessIssueQuery_StatusField(t *testing.T) {
	got := processIssueQuery(testIssues(), "status:done")
	assert.Contains(t, got, "Signup flow broken")
	assert.NotContains(t, got, "Login rework")
}

func TestProcessIssueQuery_StatusFieldEqualsSeparator(t *testing.T) {
	colon := processIssueQuery(testIssues(), "status:done")
	equals := processIssueQuery(testIssues(), "status=done")
	assert.Equal(t, colon, equals)
}

func TestProcessIssueQuery_AssigneeNone(t *testing.T) {
	got := processIssueQuery(testIssues(), "assignee:none")
	assert.Contains(t, got, "Login rework")
	assert.Contains(t, got, "Crash on save")
	assert.NotContains(t, got, "Signup flow broken")
}

func TestProcessIssueQuery_ParentField(t *testing.T) {
	got := processIssueQuery(testIssues(), "parent:100")
	assert.Contains(t, got, "Login button misaligned")
	assert.Contains(t, got, "1 of 4 issues")
}

func TestProcessIssueQuery_UnknownField(t *testing.T) {
	got := processIssueQuery(testIssues(), "owner:kim")
	assert.Contains(t, got, "unknown field")
	assert.Contains(t, got, "owner")
}

func TestProcessIssueQuery_NoHits(t *testing.T) {
	got := processIssueQuery(testIssues(), "zzzz")
	assert.Equal(t, "No issues found.", got)
}

func TestProcessIssueQuery_Count(t *testing.T) {
	got := processIssueQuery(testIssues(), "count")
	assert.Equal(t, "4 issues", got)
}

func TestProcessIssueQuery_RowShape(t *testing.T) {
	got := processIssueQuery(testIssues(), "103")
	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "103")
	assert.Contains(t, lines[0], "Crash on save")
	assert.Contains(t, lines[0], "Open")
}

func TestSplitFieldQuery(t *testing.T) {
	tests := []struct {
		in    string
		field string
		expr  string
	}{
		{"login", "", "login"},
		{"status:done", "status", "done"},
		{"status=done", "status", "done"},
		{"assignee: kim | lee", "assignee", "kim | lee"},
		{":done", "", "done"},
	}
	for _, tt := range tests {
		field, expr := splitFieldQuery(tt.in)
		assert.Equal(t, tt.field, field, tt.in)
		assert.Equal(t, tt.expr, expr, tt.in)
	}
}
