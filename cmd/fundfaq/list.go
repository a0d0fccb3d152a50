package main

import (
	"fmt"

	"github.com/fwojciec/fundfaq"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	summaries, err := deps.FAQs.FindFAQSummaries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fundfaq.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No FAQs available.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, fundfaq.FormatSummaries(summaries))
	return nil
}
