// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"strconv"
	"strings"
)

// NoneTerm is the keyword that matches only an absent resource.
const NoneTerm = "none"

// Resource is the minimal identity a clause is tested against. Both fields
// are optional. A nil ID simply never satisfies the numeric comparison; an
// empty Name is compared as-is. Callers must pass a nil *Resource, not a
// zero-valued one, when there is nothing to test so that the "none" keyword
// keeps its meaning.
type Resource struct {
	ID   *int64 `yaml:"id" json:"ID"`
	Name string `yaml:"name" json:"Name"`
}

// Clause is one |-delimited segment of a filter expression. Term has been
// trimmed and lower-cased, with any leading ! stripped into Negate.
type Clause struct {
	Negate bool   `yaml:"negate" json:"Negate"`
	Term   string `yaml:"term" json:"Term"`
}

// Parse splits a filter expression into its clauses. Clauses that are empty
// after trimming are dropped, so an expression of only separators parses to
// nothing and Matches treats it the same as no filter at all.
func Parse(expr string) []Clause {
	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var clauses []Clause

	for _, raw := range strings.Split(expr, "|") {
		clause := strings.ToLower(strings.TrimSpace(raw))
		if clause == "" {
			continue
		}

		negate := strings.HasPrefix(clause, "!")
		if negate {
			clause = clause[1:]
		}

		clauses = append(clauses, Clause{
			Negate: negate,
			Term:   clause,
		})
	}

	return clauses
}

// Matches reports whether the filter expression selects the resource. An
// empty expression (or one that parses to zero clauses) matches anything,
// including an absent resource. Otherwise the result is the OR across all
// clauses. Matches never fails; a term that isn't a number just can't match
// by ID.
func Matches(expr string, res *Resource) bool {
	clauses := Parse(expr)
	if len(clauses) == 0 {
		return true
	}

	for _, clause := range clauses {
		if clause.Eval(res) {
			return true
		}
	}

	return false
}

// Eval applies a single clause to the resource, honoring negation.
func (c Clause) Eval(res *Resource) bool {
	if c.Negate {
		return !c.eval(res)
	}
	return c.eval(res)
}

// eval is the raw, un-negated predicate. The "none" keyword matches only an
// absent resource. Any other term matches a present resource whose name
// contains the term (case-insensitively) or whose ID equals the term parsed
// as an integer. The ID comparison is exact; "123" does not match 123456.
func (c Clause) eval(res *Resource) bool {
	if c.Term == NoneTerm {
		return res == nil
	}

	if res == nil {
		return false
	}

	if strings.Contains(strings.ToLower(res.Name), c.Term) {
		return true
	}

	id, err := strconv.ParseInt(c.Term, 10, 64)
	if err != nil {
		return false
	}

	return res.ID != nil && *res.ID == id
}
