// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttrList_Set(t *testing.T) {
	tests := []struct {
		name    string
		initial []Attr
		value   string
		want    []Attr
	}{
		{
			name:  "bare key prefixes attributes",
			value: "title",
			want: []Attr{
				{Key: "attributes.title", OutputKey: "title", Include: true},
			},
		},
		{
			name:  "dotted key works off the root",
			value: ".id",
			want: []Attr{
				{Key: "id", OutputKey: "id", Include: true},
			},
		},
		{
			name:  "bang excludes from output",
			value: "!description",
			want: []Attr{
				{Key: "attributes.description", OutputKey: "description", Include: false},
			},
		},
		{
			name:  "output key and transform spec",
			value: "created-at:created:T",
			want: []Attr{
				{Key: "attributes.created-at", OutputKey: "created", Include: true, TransformSpec: "T"},
			},
		},
		{
			name:  "empty output key defaults to key",
			value: "status::u",
			want: []Attr{
				{Key: "attributes.status", OutputKey: "status", Include: true, TransformSpec: "u"},
			},
		},
		{
			name:  "star carries a global transform",
			value: "*::u",
			want: []Attr{
				{Key: "*", OutputKey: "*", Include: false, TransformSpec: "u"},
			},
		},
		{
			name: "existing attr updated in place",
			initial: []Attr{
				{Key: "attributes.title", OutputKey: "title", Include: true},
			},
			value: "title:Title:l",
			want: []Attr{
				{Key: "attributes.title", OutputKey: "Title", Include: true, TransformSpec: "l"},
			},
		},
		{
			name:  "multiple specs",
			value: ".id,title,!number",
			want: []Attr{
				{Key: "id", OutputKey: "id", Include: true},
				{Key: "attributes.title", OutputKey: "title", Include: true},
				{Key: "attributes.number", OutputKey: "number", Include: false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := AttrList(tt.initial)
			require.NoError(t, a.Set(tt.value))
			assert.Equal(t, AttrList(tt.want), a)
		})
	}
}

func TestAttrList_SetEmptyIsNoop(t *testing.T) {
	a := AttrList{}
	require.NoError(t, a.Set(""))
	assert.Empty(t, a)
	require.NoError(t, a.Set("*"))
	assert.Empty(t, a)
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	a := AttrList{
		{Key: "*", TransformSpec: "u"},
		{Key: "attributes.title", TransformSpec: "l"},
		{Key: "attributes.status"},
	}
	require.NoError(t, a.SetGlobalTransformSpec())

	assert.Equal(t, "u,l", a[1].TransformSpec)
	assert.Equal(t, "u,", a[2].TransformSpec)
}

func TestAttr_Transform(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		input interface{}
		want  interface{}
	}{
		{name: "empty spec passthrough", spec: "", input: "Login", want: "Login"},
		{name: "non-string passthrough", spec: "u", input: 42, want: 42},
		{name: "upper", spec: "u", input: "open", want: "OPEN"},
		{name: "lower", spec: "l", input: "OPEN", want: "open"},
		{name: "last case wins", spec: "u,l", input: "Open", want: "open"},
		{name: "truncate", spec: "5", input: "Login rework", want: "Login"},
		{name: "truncate short input untouched", spec: "20", input: "Login", want: "Login"},
		{name: "middle ellipsis", spec: "-6", input: "abcdefghij", want: "ab..ij"},
		{name: "last length wins", spec: "10,5", input: "Login rework", want: "Login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Attr{TransformSpec: tt.spec}
			assert.Equal(t, tt.want, attr.Transform(tt.input))
		})
	}
}

// Local time conversion depends on the system zone, so the expectation is
// computed rather than hardcoded.
func TestAttr_TransformTimeLocal(t *testing.T) {
	input := "2026-01-15T10:00:00Z"
	attr := Attr{TransformSpec: "t"}
	got := fmt.Sprintf("%v", attr.Transform(input))

	parsed, err := time.Parse(time.RFC3339, input)
	require.NoError(t, err)
	want := parsed.In(time.Local).Format("2006-01-02T15:04:05MST")
	assert.Equal(t, want, got)
}

func TestAttr_TransformTimeAgo(t *testing.T) {
	input := time.Now().Add(-2 * time.Hour).UTC().Format(time.RFC3339)
	attr := Attr{TransformSpec: "T"}
	got := fmt.Sprintf("%v", attr.Transform(input))
	assert.Contains(t, got, "hours ago")
}

func TestAttrList_String(t *testing.T) {
	a := AttrList{
		{Key: "id", OutputKey: "id"},
		{Key: "attributes.title", OutputKey: "Title", TransformSpec: "l"},
	}
	assert.Equal(t, "id:id:,attributes.title:Title:l", a.String())
}

func TestAttrList_Type(t *testing.T) {
	a := AttrList{}
	assert.Equal(t, "list", a.Type())
}
