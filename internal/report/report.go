// Package report resolves batches of destination members and renders the outcome.
package report

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	"csv-serializer/internal/analyze"
	"csv-serializer/internal/diagnostic"
	"csv-serializer/internal/match"
	"csv-serializer/resolve"
	"csv-serializer/semantic"
	"csv-serializer/typedecl"
)

// DefaultConcurrency bounds the resolution fan-out when Options.Concurrency is not set.
const DefaultConcurrency = 8

// Entry is one member to resolve, labelled with the record it belongs to.
type Entry struct {
	Owner  string
	Member typedecl.Member
}

// Row is the resolution outcome of one Entry.
type Row struct {
	Entry
	Classifications []resolve.Classification
	Primary         semantic.Type // zero when nothing was recognized
	Filter          semantic.Filter
	Err             error
}

// Options configures Run.
type Options struct {
	Concurrency int
	Logger      *slog.Logger
}

// Report holds the rows in entry order and the diagnostics derived from them.
type Report struct {
	Rows        []Row
	Diagnostics diagnostic.Diagnostics
}

// FromStructs lists the members of analyzed struct types as entries.
func FromStructs(infos ...*analyze.TypeInfo) []Entry {
	var res []Entry
	for _, info := range infos {
		if info == nil || info.Kind != analyze.TypeKindStruct {
			continue
		}

		for _, m := range info.Members {
			res = append(res, Entry{Owner: info.ID.String(), Member: m})
		}
	}

	return res
}

// Run resolves every entry with c. Entries are processed concurrently; rows keep the entry order.
// The only error returned is the context's.
func Run(ctx context.Context, c *resolve.Classifier, entries []Entry, opts Options) (*Report, error) {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With("component", "report")

	rows := make([]Row, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			rows[i] = resolveEntry(c, entry)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	r := &Report{Rows: rows}
	for _, row := range rows {
		r.Diagnostics.Merge(diagnose(row))
	}

	logger.Info("resolved members",
		"members", len(rows),
		"errors", len(r.Diagnostics.Errors),
		"warnings", len(r.Diagnostics.Warnings))

	return r, nil
}

func resolveEntry(c *resolve.Classifier, entry Entry) Row {
	row := Row{Entry: entry, Filter: semantic.FilterUnsafeRaw}

	classifications, err := c.List(entry.Member)
	if err != nil {
		row.Err = err
		return row
	}

	row.Classifications = classifications
	if primary, ok := c.Pick(entry.Member.Type); ok {
		row.Primary = primary
		row.Filter = primary.FilterFlag()
	}

	return row
}

func diagnose(row Row) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	base := diagnostic.Diagnostic{Owner: row.Owner, Member: row.Member.Name}

	if row.Err != nil {
		// List fails only for a member without declaration
		diag := base
		diag.Code = diagnostic.CodeMissingDeclaration
		diag.Message = row.Err.Error()
		d.Add(diag)

		return d
	}

	if len(row.Classifications) == 0 {
		diag := base
		diag.Code = diagnostic.CodeUnsupportedType
		diag.Message = fmt.Sprintf("declaration `%s` has no supported type", row.Member.Type)
		diag.Declared = row.Member.Type.String()
		diag.Suggestion = suggestKeyword(diag.Declared)
		d.Add(diag)

		return d
	}

	for _, declared := range typedecl.Names(row.Member.Type) {
		recognized := slices.ContainsFunc(row.Classifications, func(c resolve.Classification) bool {
			return c.Declared == declared
		})
		if recognized {
			continue
		}

		diag := base
		diag.Code = diagnostic.CodeUnrecognizedMember
		diag.Message = fmt.Sprintf("union member `%s` is not supported and is ignored", declared)
		diag.Declared = declared
		diag.Suggestion = suggestKeyword(declared)
		d.Add(diag)
	}

	diag := base
	diag.Code = diagnostic.CodeClassified
	diag.Message = fmt.Sprintf("resolved to %s (%s)", row.Primary, row.Filter)
	d.Add(diag)

	return d
}

// suggestKeyword returns the keyword a misspelled name was probably meant to be, or "".
func suggestKeyword(name string) string {
	kw, _ := match.Suggest(name, semantic.Keywords(), match.DefaultThreshold)
	return kw
}

// Write renders the report as a table followed by warnings and errors.
func (r *Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "OWNER\tMEMBER\tTARGET\tDECLARED\tPRIMARY\tFILTER\tTYPES")
	for _, row := range r.Rows {
		declared, primary, types := "-", "-", "-"
		if row.Member.Type != nil {
			declared = row.Member.Type.String()
		}
		if row.Primary.IsValid() {
			primary = row.Primary.Name()
		}
		if len(row.Classifications) > 0 {
			names := make([]string, 0, len(row.Classifications))
			for _, c := range row.Classifications {
				names = append(names, c.Type.Name())
			}
			types = strings.Join(names, ",")
		}

		owner := row.Owner
		if owner == "" {
			owner = "-"
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			owner, row.Member.Name, row.Member.Target, declared, primary, row.Filter, types)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	for _, d := range slices.Concat(r.Diagnostics.Warnings, r.Diagnostics.Errors) {
		if _, err := fmt.Fprintf(w, "%s: %s\n", d.Severity(), d); err != nil {
			return err
		}
	}

	return nil
}
