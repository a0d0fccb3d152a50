package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fundfaq"
	fundhttp "github.com/fwojciec/fundfaq/http"
	"github.com/fwojciec/fundfaq/inmem"
	fundslog "github.com/fwojciec/fundfaq/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// An interrupt is a normal way to leave.
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the interactive assistant. Set before calling Run().
	Stdin io.Reader

	// Services for end-to-end testing. When nil, Run builds them from flags.
	FAQService fundfaq.FAQService
	Searcher   fundfaq.Searcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin: os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fundfaq"),
		kong.Description("Factual answers to common mutual fund questions. This is not investment advice."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := m.wireServices(cli, deps, stderr); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wireServices picks the catalog backend from the global flags.
func (m *Main) wireServices(cli *CLI, deps *Dependencies, stderr io.Writer) error {
	faqs, searcher := m.FAQService, m.Searcher

	switch {
	case faqs != nil && searcher != nil:
	case cli.Server != "":
		client := fundhttp.NewClient(cli.Server)
		faqs, searcher = client, client
	case cli.Catalog != "":
		svc, err := inmem.LoadFAQServiceFile(cli.Catalog)
		if err != nil {
			fmt.Fprintf(stderr, "Hint: Set FUNDFAQ_CATALOG to a YAML or JSON catalog, or unset it to use the built-in one\n")
			return fmt.Errorf("failed to load catalog %q: %w", cli.Catalog, err)
		}
		faqs, searcher = svc, svc
	default:
		svc := inmem.NewDefaultFAQService()
		faqs, searcher = svc, svc
	}

	if cli.Verbose {
		faqs = fundslog.NewLoggingFAQService(faqs, deps.Logger)
		searcher = fundslog.NewLoggingSearcher(searcher, deps.Logger)
	}

	deps.FAQs = faqs
	deps.Searcher = searcher
	return nil
}
