package main

import (
	"fmt"

	fundhttp "github.com/fwojciec/fundfaq/http"
)

// Run executes the serve command. It blocks until the context is cancelled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := fundhttp.NewServer(deps.FAQs, deps.Searcher,
		fundhttp.WithLogger(deps.Logger),
		fundhttp.WithAllowedOrigins(c.CORSOrigins...),
		fundhttp.WithRateLimit(c.Rate, c.Burst),
	)

	if err := srv.ListenAndServe(deps.Ctx, c.Addr); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return nil
}
