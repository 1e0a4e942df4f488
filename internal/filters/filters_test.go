// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tixctl/tixctl/internal/attrs"
)

const issueRows = `[
  {
    "type": "issues",
    "id": "101",
    "attributes": {
      "number": 101,
      "title": "Login rework",
      "status": "open",
      "labels": ["auth", "frontend"]
    }
  },
  {
    "type": "issues",
    "id": "102",
    "attributes": {
      "number": 102,
      "title": "Fix signup crash",
      "status": "closed",
      "labels": ["auth"]
    }
  },
  {
    "type": "issues",
    "id": "103",
    "attributes": {
      "number": 103,
      "title": "Dark mode",
      "status": "open",
      "labels": []
    }
  }
]`

func issueAttrs(t *testing.T) attrs.AttrList {
	t.Helper()
	a := attrs.AttrList{}
	require.NoError(t, a.Set(".id,number,title,status,labels"))
	return a
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want []Filter
	}{
		{
			name: "empty spec",
			spec: "",
			want: nil,
		},
		{
			name: "key only",
			spec: "status",
			want: []Filter{{Key: "status"}},
		},
		{
			name: "equals",
			spec: "status=open",
			want: []Filter{{Key: "status", Operand: "=", Value: "open"}},
		},
		{
			name: "negated equals",
			spec: "status!=open",
			want: []Filter{{Key: "status", Negate: true, Operand: "=", Value: "open"}},
		},
		{
			name: "server-side filter",
			spec: "_status=open",
			want: []Filter{{Key: "status", ServerSide: true, Operand: "=", Value: "open"}},
		},
		{
			name: "multiple specs",
			spec: "status=open,number>100",
			want: []Filter{
				{Key: "status", Operand: "=", Value: "open"},
				{Key: "number", Operand: ">", Value: "100"},
			},
		},
		{
			name: "empty key skipped",
			spec: "=open,status=open",
			want: []Filter{{Key: "status", Operand: "=", Value: "open"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilters(tt.spec))
		})
	}
}

func TestBuildFiltersDelimOverride(t *testing.T) {
	t.Setenv("TIXCTL_FILTER_DELIM", ";")
	got := BuildFilters("title@a,b;status=open")
	require.Len(t, got, 2)
	assert.Equal(t, "a,b", got[0].Value)
	assert.Equal(t, "status", got[1].Key)
}

func TestFilterDataset(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantNumbers []float64
	}{
		{name: "no filters keeps all", spec: "", wantNumbers: []float64{101, 102, 103}},
		{name: "string equals", spec: "status=open", wantNumbers: []float64{101, 103}},
		{name: "negated equals", spec: "status!=open", wantNumbers: []float64{102}},
		{name: "case-insensitive equals", spec: "status~OPEN", wantNumbers: []float64{101, 103}},
		{name: "substring", spec: "title@signup", wantNumbers: []float64{102}},
		{name: "prefix", spec: "title^Login", wantNumbers: []float64{101}},
		{name: "regex", spec: "title/^(Login|Dark)", wantNumbers: []float64{101, 103}},
		{name: "numeric greater", spec: "number>101", wantNumbers: []float64{102, 103}},
		{name: "numeric less", spec: "number<102", wantNumbers: []float64{101}},
		{name: "array membership", spec: "labels@frontend", wantNumbers: []float64{101}},
		{name: "negated membership", spec: "labels!@auth", wantNumbers: []float64{103}},
		{name: "conjunction", spec: "status=open,number>101", wantNumbers: []float64{103}},
		{name: "server-side ignored here", spec: "_status=closed", wantNumbers: []float64{101, 102, 103}},
		{name: "unknown key skipped", spec: "bogus=1", wantNumbers: []float64{101, 102, 103}},
	}

	candidates := gjson.Parse(issueRows)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := FilterDataset(candidates, issueAttrs(t), tt.spec)

			var got []float64
			for _, row := range rows {
				num, ok := row["number"].(float64)
				require.True(t, ok)
				got = append(got, num)
			}
			assert.Equal(t, tt.wantNumbers, got)
		})
	}
}

// Rows missing the filtered value are excluded rather than erroring.
func TestFilterDatasetMissingValue(t *testing.T) {
	candidates := gjson.Parse(`[{"attributes":{"number": 1}}, {"attributes":{"number": 2, "status": "open"}}]`)
	a := attrs.AttrList{}
	require.NoError(t, a.Set("number,status"))

	rows := FilterDataset(candidates, a, "status=open")
	require.Len(t, rows, 1)
	assert.Equal(t, float64(2), rows[0]["number"])
}
