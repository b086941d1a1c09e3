// Package main provides the CLI entrypoint for csv-typecheck.
//
// csv-typecheck reports, for every destination member of a record mapping, which
// semantic type governs its casting and which filter directive applies:
//   - members come from a YAML file and/or from the structs of analyzed Go packages
//   - enums and dates are known from the YAML registry section and from package analysis
//   - members without a type declaration are reported as errors
//   - -write-config saves the analyzed registry and members so later runs need no package analysis
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"csv-serializer/internal/analyze"
	"csv-serializer/internal/common"
	"csv-serializer/internal/config"
	"csv-serializer/internal/match"
	"csv-serializer/internal/report"
	"csv-serializer/registry"
	"csv-serializer/resolve"
)

const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitUsage       = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// invocation holds the parsed command line.
type invocation struct {
	configPath  string
	packages    []string
	types       []string
	concurrency int
	verbose     bool
	writeConfig string
}

func parseArgs(args []string, stderr io.Writer) (invocation, error) {
	var (
		inv      invocation
		packages string
		types    string
	)

	fs := flag.NewFlagSet("csv-typecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inv.configPath, "config", "", "YAML file with registry entries and members")
	fs.StringVar(&packages, "packages", "", "comma separated Go package patterns to analyze")
	fs.StringVar(&types, "types", "", "comma separated struct types to check (default: all analyzed structs)")
	fs.IntVar(&inv.concurrency, "concurrency", report.DefaultConcurrency, "maximum members resolved in parallel")
	fs.BoolVar(&inv.verbose, "v", false, "enable debug logging")
	fs.StringVar(&inv.writeConfig, "write-config", "", "write the resolved registry and members to this YAML file")

	if err := fs.Parse(args); err != nil {
		return invocation{}, err
	}

	inv.packages = splitList(packages)
	inv.types = splitList(types)

	if inv.configPath == "" && len(inv.packages) == 0 {
		return invocation{}, errors.New("either -config or -packages is required")
	}

	return inv, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	inv, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return ExitUsage
	}

	level := slog.LevelInfo
	if inv.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := &config.File{}
	baseDir := ""
	if inv.configPath != "" {
		cfg, err = config.LoadFile(inv.configPath)
		if err != nil {
			logger.Error("loading config", "error", err)
			return ExitUsage
		}
		baseDir = filepath.Dir(inv.configPath)
	}

	var (
		entries  []report.Entry
		analyzed *registry.Static
	)
	registries := registry.Chain{registry.NewStatic(cfg.Registry), registry.NewReflect()}

	// config patterns are relative to the config file, command line ones to the working directory
	patterns := append(relativeTo(baseDir, cfg.Packages), inv.packages...)
	if len(patterns) > 0 {
		graph, err := analyze.NewAnalyzer("").LoadPackages(patterns...)
		if err != nil {
			logger.Error("analyzing packages", "patterns", patterns, "error", err)
			return ExitUsage
		}

		analyzed = graph.Registry(cfg.Registry.DateInterface)
		registries = append(registries, analyzed)

		selected, err := selectStructs(graph, append(cfg.Types, inv.types...))
		if err != nil {
			logger.Error("selecting types", "error", err)
			return ExitUsage
		}

		entries = append(entries, report.FromStructs(selected...)...)
	}

	for _, spec := range cfg.Members {
		entries = append(entries, report.Entry{Owner: spec.Owner, Member: spec.Member()})
	}

	if inv.writeConfig != "" {
		if err := config.WriteFile(resolvedConfig(cfg, analyzed, entries), inv.writeConfig); err != nil {
			logger.Error("writing config", "error", err)
			return ExitUsage
		}
	}

	classifier := resolve.New(registries, resolve.WithLogger(logger))

	r, err := report.Run(ctx, classifier, entries, report.Options{
		Concurrency: inv.concurrency,
		Logger:      logger,
	})
	if err != nil {
		logger.Error("resolving members", "error", err)
		return ExitUsage
	}

	if err := r.Write(stdout); err != nil {
		logger.Error("writing report", "error", err)
		return ExitUsage
	}

	if err := r.Diagnostics.Err(); err != nil {
		logger.Error("type check failed", "errors", len(r.Diagnostics.Errors), "error", err)
		return ExitDiagnostics
	}

	return ExitOK
}

// resolvedConfig is a config that reproduces this run without package analysis:
// analyzed enums and dates join the registry and every entry becomes a member.
func resolvedConfig(cfg *config.File, analyzed *registry.Static, entries []report.Entry) *config.File {
	reg := cfg.Registry
	if analyzed != nil {
		found := analyzed.Config()
		reg.Enums = slices.Concat(reg.Enums, found.Enums)
		reg.Dates = slices.Concat(reg.Dates, found.Dates)
	}

	out := &config.File{
		Version:  cfg.Version,
		Registry: registry.NewStatic(reg).Config(),
	}
	for _, e := range entries {
		out.Members = append(out.Members, config.MemberSpecOf(e.Owner, e.Member))
	}

	return out
}

// selectStructs returns the named structs, or every analyzed struct when names is empty.
func selectStructs(graph *analyze.TypeGraph, names []string) ([]*analyze.TypeInfo, error) {
	if len(names) == 0 {
		return graph.OfKind(analyze.TypeKindStruct), nil
	}

	var res []*analyze.TypeInfo
	for _, name := range names {
		info := analyze.FindType(name, graph)
		if info == nil {
			return nil, notFound(name, graph)
		}
		if info.Kind != analyze.TypeKindStruct {
			return nil, fmt.Errorf("type %s is not a struct (kind: %s)", info.ID, info.Kind)
		}

		res = append(res, info)
	}

	return res, nil
}

func notFound(name string, graph *analyze.TypeGraph) error {
	structs := graph.OfKind(analyze.TypeKindStruct)

	candidates := make([]string, 0, len(structs))
	for _, info := range structs {
		candidates = append(candidates, common.ShortName(info.ID.String()))
	}

	if s, ok := match.Suggest(name, candidates, match.DefaultThreshold); ok {
		return fmt.Errorf("type %s not found, did you mean %s?", name, s)
	}

	return fmt.Errorf("type %s not found", name)
}

// relativeTo anchors relative directory patterns ("./x", "../y/...") at dir.
func relativeTo(dir string, patterns []string) []string {
	res := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if dir != "" && strings.HasPrefix(p, ".") {
			if abs, err := filepath.Abs(filepath.Join(dir, p)); err == nil {
				p = abs
			}
		}

		res = append(res, p)
	}

	return res
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}

	return res
}
