// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"reflect"

	"github.com/hashicorp/jsonapi"
	"github.com/urfave/cli/v3"

	"github.com/tixctl/tixctl/internal/attrs"
	"github.com/tixctl/tixctl/internal/meta"
	"github.com/tixctl/tixctl/internal/output"
	"github.com/tixctl/tixctl/internal/tracker"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the JSON schema for the provided type to stdout
// when --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t, nil)
		return true
	}
	return false
}

// EmitJSONAPISlice marshals a slice as JSONAPI and passes it to the common
// output routine. The optional postProcess callback lets commands touch up
// rows (resolving relationship names, say) before rendering.
func EmitJSONAPISlice(results any, al attrs.AttrList, cmd *cli.Command,
	postProcess func([]map[string]interface{}) error) error {
	var raw bytes.Buffer
	if err := jsonapi.MarshalPayload(&raw, results); err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	output.SliceDiceSpit(raw, al, cmd, "data", os.Stdout, postProcess)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// PaginateWithOptions[T, O] is a generic paginator that drives paginated API
// calls with mutable options. It handles pagination logic and returns all
// collected results. The augmenter callback (if provided) is called before
// each API invocation, allowing options customization (e.g., setting filters
// or search terms). The fetcher callback encapsulates the actual API call and
// must return results, pagination info, and any error.
func PaginateWithOptions[T, O any](
	ctx context.Context,
	cmd *cli.Command,
	options *O,
	fetcher func(context.Context, *O) ([]T, *tracker.Pagination, error),
	augmenter Augmenter[O],
) ([]T, error) {
	var results []T

	// Paginate through pages
	for {
		// Invoke augmenter before each page (to allow options mutation)
		if augmenter != nil {
			if err := augmenter(ctx, cmd, options); err != nil {
				return nil, err
			}
		}

		// Fetch current page
		items, pagination, err := fetcher(ctx, options)
		if err != nil {
			return nil, err
		}

		results = append(results, items...)

		// Check if there are more pages
		if pagination.NextPage == 0 {
			break
		}

		// Increment page number for next iteration
		setPageNumber(options, pagination.NextPage)
	}

	return results, nil
}

// ProjectQueryFetcherFactory creates a generic fetch function for
// project-scoped queries. It handles the common pagination and augmentation
// logic, delegating only the API call itself to the provided fetcher, and
// handling errors with the provided operation name for context.
func ProjectQueryFetcherFactory[T, O any](
	client *tracker.Client,
	project string,
	fetcher ProjectListFetcher[T, O],
	augmenter Augmenter[O],
	operation string,
) func(context.Context, *cli.Command) ([]T, error) {
	return func(ctx context.Context, cmd *cli.Command) ([]T, error) {
		options := new(O)
		// Set DefaultListOptions on the options struct's ListOptions field
		setListOptionsDefaults(options)

		results, err := PaginateWithOptions(
			ctx,
			cmd,
			options,
			func(ctx context.Context, opts *O) ([]T, *tracker.Pagination, error) {
				items, pagination, err := fetcher(ctx, project, opts)
				if err != nil {
					ctxErr := ProjectQueryErrorContext(client, project, operation)
					return nil, nil, tracker.Friendly(err, ctxErr)
				}
				return items, pagination, nil
			},
			augmenter,
		)
		return results, err
	}
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr tixctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "tixctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// setListOptionsDefaults uses reflection to set DefaultListOptions on a
// struct's ListOptions field.
func setListOptionsDefaults(options any) {
	v := reflect.ValueOf(options).Elem()
	lo := v.FieldByName("ListOptions")
	if lo.IsValid() && lo.CanSet() {
		lo.Set(reflect.ValueOf(tracker.DefaultListOptions))
	}
}

// setPageNumber uses reflection to set the PageNumber field in the options
// struct. It assumes the struct has a ListOptions.PageNumber field (standard
// in the tracker API options).
func setPageNumber(options any, pageNumber int) {
	v := reflect.ValueOf(options).Elem()
	lo := v.FieldByName("ListOptions")
	if !lo.IsValid() {
		return
	}
	pn := lo.FieldByName("PageNumber")
	if pn.IsValid() && pn.CanSet() {
		pn.SetInt(int64(pageNumber))
	}
}
