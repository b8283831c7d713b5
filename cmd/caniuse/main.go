package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/caniuse"
	"github.com/fwojciec/caniuse/bubbletea"
	"github.com/fwojciec/caniuse/goquery"
	"github.com/fwojciec/caniuse/htmltomarkdown"
	ciuhttp "github.com/fwojciec/caniuse/http"
	"github.com/fwojciec/caniuse/lipgloss"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if caniuse.ErrorCode(err) != caniuse.ECANCELLED {
			fmt.Fprintf(os.Stderr, "error: %s\n", caniuse.ErrorMessage(err))
		}
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for all network access. Set before calling Run() to
	// override the default HTTP fetcher in tests.
	Fetcher caniuse.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	parser, err := kong.New(cli,
		kong.Name("caniuse"),
		kong.Description("Browser support tables from caniuse.com in your terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Vars{"version": caniuse.Version},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return caniuse.Errorf(caniuse.EINVALID, "No query given. Run 'caniuse --help' for usage.")
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
		if arg == "--version" || arg == "-v" {
			fmt.Fprintln(stdout, caniuse.Version)
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	m.wire(deps, cli, logger)
	defer m.Close()

	return kongCtx.Run(deps)
}

// wire builds the service graph on deps from the parsed CLI flags.
func (m *Main) wire(deps *Dependencies, cli *CLI, logger *slog.Logger) {
	if m.Fetcher == nil {
		timeout := cli.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		m.Fetcher = ciuhttp.NewFetcher(ciuhttp.WithTimeout(timeout))
	}

	deps.Pages = ciuhttp.NewClient(m.Fetcher)
	deps.API = ciuhttp.NewAPI()
	deps.Search = goquery.NewSearchParser(goquery.WithSearchLogger(logger))
	deps.Features = goquery.NewFeatureParser(
		goquery.WithConverter(htmltomarkdown.NewConverter()),
		goquery.WithFeatureLogger(logger),
	)
	deps.Renderer = lipgloss.NewRenderer(deps.Stdout)
	deps.SelectFn = bubbletea.Select
	deps.ViewFn = bubbletea.View
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
}
