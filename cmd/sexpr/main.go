// Command sexpr reads s-expression scripts and prints every top-level value
// they contain.
//
// Usage:
//
//	sexpr [flags] [file ...]
//
// With no files, or with "-", the script is read from standard input.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	sexpr "github.com/xiam/lscript"
	"github.com/xiam/lscript/parser"
)

type config struct {
	tokens   bool
	verbose  bool
	opts     sexpr.Options
	paths    []string
	parallel int
}

type result struct {
	out    bytes.Buffer
	errOut bytes.Buffer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("sexpr", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&cfg.tokens, "tokens", false, "dump tokens instead of values")
	fs.BoolVar(&cfg.opts.Tree, "tree", false, "print values as annotated trees")
	fs.BoolVar(&cfg.opts.Snippets, "snippet", false, "show the source line of every error")
	fs.BoolVar(&cfg.opts.Parser.AutoCloseOnEOF, "autoclose", false, "close open lists at end of input")
	fs.IntVar(&cfg.opts.Parser.MaxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth")
	fs.IntVar(&cfg.parallel, "j", 4, "number of files read at the same time")
	fs.BoolVar(&cfg.verbose, "v", false, "log per file statistics")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.paths = fs.Args()
	if len(cfg.paths) == 0 {
		cfg.paths = []string{"-"}
	}
	if cfg.parallel < 1 {
		cfg.parallel = 1
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	logger := log.New(stderr, "sexpr: ", 0)

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	results := make([]result, len(cfg.paths))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(cfg.parallel)

	for i, path := range cfg.paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := readSource(path, stdin)
			if err != nil {
				return err
			}

			res := &results[i]
			s := sexpr.NewSession(cfg.opts)
			if cfg.tokens {
				n, err := s.DumpTokens(src, &res.out, &res.errOut)
				if cfg.verbose {
					logger.Printf("%s: %d tokens", path, n)
				}
				return err
			}

			n, err := s.Eval(src, &res.out, &res.errOut)
			if cfg.verbose {
				logger.Printf("%s: %d values, %d live interned entries", path, n, s.Table().Len())
			}
			return err
		})
	}

	status := 0
	if err := g.Wait(); err != nil {
		logger.Print(err)
		status = 1
	}

	for i := range results {
		if _, err := results[i].out.WriteTo(stdout); err != nil {
			logger.Print(err)
			return 1
		}
		if _, err := results[i].errOut.WriteTo(stderr); err != nil {
			return 1
		}
	}

	return status
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return src, nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return src, nil
}
