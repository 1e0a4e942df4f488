// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package differ

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tixctl/tixctl/internal/tracker"
)

func TestDiffIdentical(t *testing.T) {
	doc := []byte(`{"data":{"id":"101","attributes":{"title":"Login rework"}}}`)

	buf := new(bytes.Buffer)
	err := Diff([][]byte{doc, doc}, "", buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "identical")
}

func TestDiffModified(t *testing.T) {
	one := []byte(`{"data":{"id":"101","attributes":{"title":"Login rework","status":"open"}}}`)
	two := []byte(`{"data":{"id":"101","attributes":{"title":"Login rework","status":"closed"}}}`)

	buf := new(bytes.Buffer)
	err := Diff([][]byte{one, two}, "", buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "open")
	assert.Contains(t, out, "closed")
}

func TestDiffEmptyDocSkipped(t *testing.T) {
	buf := new(bytes.Buffer)
	err := Diff([][]byte{nil, []byte(`{}`)}, "", buf)
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestModelSelection(t *testing.T) {
	issues := []*tracker.Issue{
		{ID: "101", Number: 101, Title: "Login rework"},
		{ID: "102", Number: 102, Title: "Fix signup crash"},
		{ID: "103", Number: 103, Title: "Dark mode"},
	}

	m := model{items: issues}

	// Select the first, move down, select the second.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(model)

	require.Len(t, m.selected, 2)
	assert.Equal(t, "101", m.selected[0].ID)
	assert.Equal(t, "102", m.selected[1].ID)

	// A third selection is ignored.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(model)
	assert.Len(t, m.selected, 2)

	// Space on an already selected issue deselects it.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(model)
	assert.Len(t, m.selected, 1)
}

func TestModelEscapeClearsSelection(t *testing.T) {
	m := model{items: []*tracker.Issue{{ID: "101"}}}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(model)
	require.Len(t, m.selected, 1)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	assert.Nil(t, m.selected)
}

func TestModelView(t *testing.T) {
	m := model{items: []*tracker.Issue{{ID: "101", Number: 101, Title: "Login rework"}}}
	view := m.View()
	assert.Contains(t, view, "Login rework")
	assert.Contains(t, view, "101")
}
