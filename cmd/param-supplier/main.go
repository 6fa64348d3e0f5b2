// Package main provides the CLI entrypoint for param-supplier.
//
// param-supplier loads a fixture file and resolves the declared parameters of its test
// methods, the way a test runner would before invoking each test:
//
//	param-supplier [-config options.yaml] [-debug] [-dump] [-metrics] [-plain] [-method TestX] fixture.yaml
//
// Each method counts as passed when all its parameters resolve, failed when a field is
// malformed, and exception for any other failure. The exit status is 1 when any method did
// not pass.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"param-supplier/fixture"
	"param-supplier/options"
	"param-supplier/report"
	"param-supplier/resolve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("param-supplier", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "param-supplier.yaml", "Options file (missing file means defaults)")
	debugFlag := fs.Bool("debug", false, "Log resolution decisions")
	dumpFlag := fs.Bool("dump", false, "Dump resolved values with their types")
	metricsFlag := fs.Bool("metrics", false, "Write Prometheus text metrics after the summary")
	plainFlag := fs.Bool("plain", false, "Disable colors")
	methodFlag := fs.String("method", "", "Resolve only this test method")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "param-supplier: exactly one fixture file is required")
		fs.Usage()
		return 2
	}

	opts, err := options.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "param-supplier: %v\n", err)
		return 2
	}

	if err := opts.ApplyEnv(); err != nil {
		fmt.Fprintf(stderr, "param-supplier: %v\n", err)
		return 2
	}

	if *debugFlag {
		opts.Debug = true
	}

	level := slog.LevelWarn
	if opts.Debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := fixture.LoadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "param-supplier: %v\n", err)
		return 2
	}

	engine := resolve.New(resolve.WithOptions(opts), resolve.WithLogger(logger))
	set := f.Set()

	methods := set.Methods()
	if *methodFlag != "" {
		methods = []string{*methodFlag}
	}

	book := report.NewBook()

	for _, method := range methods {
		totals := book.Item(method)

		params, names, err := paramsOf(f.Methods[method])
		if err == nil {
			var argLists [][]any

			argLists, err = engine.SupplyAll(set, method, params)
			if err == nil {
				printArgs(stdout, method, names, argLists, *dumpFlag)
				totals.RecordPassed()
				continue
			}
		}

		logger.Debug("method did not resolve", "method", method, "error", err)
		fmt.Fprintf(stderr, "%s: %v\n", method, err)

		if errors.Is(err, resolve.ErrMalformedField) {
			totals.RecordFailed()
		} else {
			totals.RecordException()
		}
	}

	theme := report.DefaultTheme()
	if *plainFlag {
		theme = report.PlainTheme()
	}

	fmt.Fprintln(stdout, report.RenderBook(book, theme))

	if *metricsFlag {
		if err := report.WriteMetrics(stdout, book.All()...); err != nil {
			fmt.Fprintf(stderr, "param-supplier: %v\n", err)
			return 2
		}
	}

	if sum := book.Sum("all"); sum.Passed() != sum.Total() {
		return 1
	}

	return 0
}

// paramsOf turns declarations into parameters. A method without declarations gets its whole
// rows as a single map parameter.
func paramsOf(m *fixture.Method) ([]resolve.Param, []string, error) {
	if m == nil || len(m.Params) == 0 {
		return []resolve.Param{resolve.ParamOf[fixture.Row]("")}, []string{"row"}, nil
	}

	params := make([]resolve.Param, len(m.Params))
	names := make([]string, len(m.Params))

	for i, decl := range m.Params {
		t, elem, err := decl.Types()
		if err != nil {
			return nil, nil, fmt.Errorf("param %d: %w", i, err)
		}

		params[i] = resolve.Param{Name: decl.Name, Type: t, Elem: elem}

		names[i] = decl.Name
		if names[i] == "" {
			names[i] = decl.Type
		}
	}

	return params, names, nil
}

func printArgs(w io.Writer, method string, names []string, argLists [][]any, dump bool) {
	for i, args := range argLists {
		if dump {
			fmt.Fprintf(w, "%s[%d]:\n", method, i)
			spew.Fdump(w, args...)
			continue
		}

		parts := make([]string, len(args))
		for j, v := range args {
			parts[j] = fmt.Sprintf("%s=%v", names[j], v)
		}

		fmt.Fprintf(w, "%s[%d]: %s\n", method, i, strings.Join(parts, ", "))
	}
}
