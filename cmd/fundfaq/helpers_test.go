package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	main "github.com/fwojciec/fundfaq/cmd/fundfaq"
	"github.com/fwojciec/fundfaq/inmem"
)

// testDeps returns dependencies backed by the built-in catalog.
func testDeps(stdin string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	svc := inmem.NewDefaultFAQService()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdin:    bytes.NewBufferString(stdin),
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   discardLogger(),
		FAQs:     svc,
		Searcher: svc,
	}, stdout, stderr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
