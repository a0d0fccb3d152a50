package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/fundfaq"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	FAQs     fundfaq.FAQService
	Searcher fundfaq.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Catalog string `short:"c" env:"FUNDFAQ_CATALOG" help:"Load FAQs from a YAML or JSON catalog file"`
	Server  string `short:"s" env:"FUNDFAQ_SERVER" help:"Use a remote fundfaq API instead of a local catalog"`
	Verbose bool   `short:"v" env:"FUNDFAQ_VERBOSE" help:"Log every catalog lookup to stderr"`

	Repl  ReplCmd  `cmd:"" default:"1" help:"Start the interactive assistant (default)"`
	Ask   AskCmd   `cmd:"" help:"Answer a single question"`
	List  ListCmd  `cmd:"" help:"List all questions"`
	Show  ShowCmd  `cmd:"" help:"Show the FAQ with the given id"`
	Serve ServeCmd `cmd:"" help:"Serve the JSON API"`
}

// ReplCmd is the "repl" subcommand.
type ReplCmd struct{}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query []string `arg:"" optional:"" help:"Question text"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"FAQ id"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr        string   `default:":5001" env:"FUNDFAQ_ADDR" help:"Listen address"`
	CORSOrigins []string `name:"cors-origin" default:"*" help:"Allowed CORS origin (repeatable)"`
	Rate        float64  `default:"0" help:"Requests per second allowed across all clients, 0 disables"`
	Burst       int      `default:"10" help:"Rate limiter burst size"`
}
