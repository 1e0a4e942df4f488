// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/attrs"
)

func TestSortDataset(t *testing.T) {
	testData := []map[string]interface{}{
		{"title": "Zebra stripes", "number": 103.0, "status": "open"},
		{"title": "auth refresh", "number": 101.0, "status": "closed"},
		{"title": "Dark mode", "number": 102.0, "status": "open"},
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []float64
	}{
		{
			name:      "ascending by title",
			spec:      "title",
			wantOrder: []float64{101, 102, 103},
		},
		{
			name:      "descending by title",
			spec:      "-title",
			wantOrder: []float64{103, 102, 101},
		},
		{
			name:      "ascending by number",
			spec:      "number",
			wantOrder: []float64{101, 102, 103},
		},
		{
			name:      "descending by number",
			spec:      "-number",
			wantOrder: []float64{103, 102, 101},
		},
		{
			name: "case sensitive puts capitals first",
			spec: "!title",
			// 'D' and 'Z' sort before 'a' in a case sensitive compare.
			wantOrder: []float64{102, 103, 101},
		},
		{
			name:      "multiple fields",
			spec:      "status,number",
			wantOrder: []float64{101, 102, 103},
		},
		{
			name:      "empty spec preserves order",
			spec:      "",
			wantOrder: []float64{103, 101, 102},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]map[string]interface{}, len(testData))
			copy(data, testData)
			SortDataset(data, tt.spec)
			for i, want := range tt.wantOrder {
				assert.Equal(t, want, data[i]["number"], "at index %d", i)
			}
		})
	}
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		emptyVal string
		want     string
	}{
		{name: "string", value: "hello", want: "hello"},
		{name: "int", value: 42, want: "42"},
		{name: "float64", value: 42.5, want: "42"},
		{name: "float64 with decimal", value: 42.7, want: "43"},
		{name: "bool true", value: true, want: "true"},
		{name: "bool false is zero value", value: false, want: ""},
		{name: "nil default", value: nil, want: ""},
		{name: "nil custom", value: nil, emptyVal: "-", want: "-"},
		{name: "slice", value: []string{"a", "b"}, want: `["a","b"]`},
		{name: "map", value: map[string]int{"x": 1}, want: `{"x":1}`},
		{name: "zero value int", value: 0, want: ""},
		{name: "zero value with custom empty", value: 0, emptyVal: "N/A", want: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.emptyVal != "" {
				got = InterfaceToString(tt.value, tt.emptyVal)
			} else {
				got = InterfaceToString(tt.value)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTag(t *testing.T) {
	tests := []struct {
		name string
		h    string
		s    string
		want schemaTag
	}{
		{
			name: "simple attr",
			s:    "attr,title",
			want: schemaTag{Kind: "attr", Name: "title"},
		},
		{
			name: "with holder",
			h:    "issue",
			s:    "attr,title",
			want: schemaTag{Kind: "attr", Name: "issue.title"},
		},
		{
			name: "with encoding",
			s:    "attr,created-at,iso8601",
			want: schemaTag{Kind: "attr", Name: "created-at", Encoding: "iso8601"},
		},
		{
			name: "relation kind excluded",
			s:    "relation,status",
			want: schemaTag{},
		},
		{
			name: "empty string",
			s:    "",
			want: schemaTag{},
		},
		{
			name: "only kind",
			s:    "attr",
			want: schemaTag{Kind: "attr"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTag(tt.h, tt.s)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTag_Print(t *testing.T) {
	assert.Equal(t, "issue.title", schemaTag{Name: "issue.title"}.print())
	assert.Equal(t, "", schemaTag{}.print())
}

func TestDumpSchemaWalker(t *testing.T) {
	type simpleResource struct {
		Title  string `jsonapi:"attr,title"`
		Number int    `jsonapi:"attr,number"`
	}

	type nestedResource struct {
		Title  string          `jsonapi:"attr,title"`
		Simple simpleResource  `jsonapi:"attr,simple"`
		Ptr    *simpleResource `jsonapi:"attr,ptr_simple"`
	}

	got := dumpSchemaWalker("", reflect.TypeOf(simpleResource{}), 0)
	require.Len(t, got, 2)
	assert.Equal(t, "title", got[0].Name)
	assert.Equal(t, "number", got[1].Name)

	got = dumpSchemaWalker("parent", reflect.TypeOf(nestedResource{}), 0)
	assert.GreaterOrEqual(t, len(got), 3)
	assert.Equal(t, "parent.title", got[0].Name)
}

func TestDumpSchema(t *testing.T) {
	type issueSchema struct {
		Number int    `jsonapi:"attr,number"`
		Title  string `jsonapi:"attr,title"`
	}

	buf := new(bytes.Buffer)
	DumpSchema("", reflect.TypeOf(issueSchema{}), buf)

	assert.Contains(t, buf.String(), "number")
	assert.Contains(t, buf.String(), "title")
}

func TestGetColors(t *testing.T) {
	header, even, odd := getColors("colors")

	assert.NotNil(t, header)
	assert.NotNil(t, even)
	assert.NotNil(t, odd)
}

// newOutputCommand wires the flags SliceDiceSpit and TableWriter read.
func newOutputCommand(output string) *cli.Command {
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: output},
			&cli.StringFlag{Name: "filter"},
			&cli.StringFlag{Name: "sort", Value: "number"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "local"},
			&cli.BoolFlag{Name: "titles", Value: true},
			&cli.IntFlag{Name: "padding", Value: 2},
		},
	}
	cmd.Metadata = make(map[string]interface{})
	return cmd
}

const issueDataset = `{
  "data": [
    {
      "type": "issues",
      "id": "102",
      "attributes": {"number": 102, "title": "Fix signup crash", "status": "closed"}
    },
    {
      "type": "issues",
      "id": "101",
      "attributes": {"number": 101, "title": "Login rework", "status": "open"}
    }
  ],
  "included": []
}`

func issueDatasetAttrs(t *testing.T) attrs.AttrList {
	t.Helper()
	a := attrs.AttrList{}
	require.NoError(t, a.Set("number,title,status"))
	return a
}

func TestSliceDiceSpitJSON(t *testing.T) {
	buf := new(bytes.Buffer)
	raw := *bytes.NewBufferString(issueDataset)

	SliceDiceSpit(raw, issueDatasetAttrs(t), newOutputCommand("json"), "data", buf, nil)

	parsed := gjson.Parse(buf.String())
	require.True(t, parsed.IsArray())
	rows := parsed.Array()
	require.Len(t, rows, 2)
	// Sorted by number per the sort flag.
	assert.Equal(t, int64(101), rows[0].Get("number").Int())
	assert.Equal(t, "Fix signup crash", rows[1].Get("title").String())
}

func TestSliceDiceSpitRaw(t *testing.T) {
	buf := new(bytes.Buffer)
	raw := *bytes.NewBufferString(issueDataset)

	SliceDiceSpit(raw, issueDatasetAttrs(t), newOutputCommand("raw"), "data", buf, nil)

	assert.Equal(t, issueDataset, buf.String())
}

func TestSliceDiceSpitFilters(t *testing.T) {
	buf := new(bytes.Buffer)
	raw := *bytes.NewBufferString(issueDataset)

	cmd := newOutputCommand("json")
	require.NoError(t, cmd.Set("filter", "status=open"))

	SliceDiceSpit(raw, issueDatasetAttrs(t), cmd, "data", buf, nil)

	rows := gjson.Parse(buf.String()).Array()
	require.Len(t, rows, 1)
	assert.Equal(t, "Login rework", rows[0].Get("title").String())
}

func TestSliceDiceSpitPostProcess(t *testing.T) {
	buf := new(bytes.Buffer)
	raw := *bytes.NewBufferString(issueDataset)

	post := func(rows []map[string]interface{}) error {
		for _, row := range rows {
			row["status"] = "resolved:" + InterfaceToString(row["status"])
		}
		return nil
	}

	SliceDiceSpit(raw, issueDatasetAttrs(t), newOutputCommand("json"), "data", buf, post)

	rows := gjson.Parse(buf.String()).Array()
	require.Len(t, rows, 2)
	assert.Equal(t, "resolved:open", rows[0].Get("status").String())
}

func TestTableWriter(t *testing.T) {
	buf := new(bytes.Buffer)

	resultSet := []map[string]interface{}{
		{"number": 101.0, "title": "Login rework", "internal": "hidden"},
	}
	a := attrs.AttrList{
		{OutputKey: "number", Include: true},
		{OutputKey: "title", Include: true},
		{OutputKey: "internal", Include: false},
	}

	cmd := newOutputCommand("text")
	cmd.Metadata["header"] = "roadster issues"

	TableWriter(resultSet, a, cmd, buf)

	out := buf.String()
	assert.Contains(t, out, "roadster issues")
	assert.Contains(t, out, "Login rework")
	assert.Contains(t, out, "101")
	assert.NotContains(t, out, "hidden")
}

func TestTableWriterEmptyResultSet(t *testing.T) {
	buf := new(bytes.Buffer)
	TableWriter(nil, attrs.AttrList{}, newOutputCommand("text"), buf)
	assert.Empty(t, buf.String())
}
