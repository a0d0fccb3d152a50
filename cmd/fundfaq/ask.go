package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/fundfaq"
)

const notFoundMessage = "Sorry, I couldn't find information on that topic."

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	faq, err := deps.Searcher.Search(deps.Ctx, strings.Join(c.Query, " "))
	switch fundfaq.ErrorCode(err) {
	case "":
		fmt.Fprintln(deps.Stdout, fundfaq.FormatAnswer(faq))
		return nil
	case fundfaq.ENOTFOUND:
		fmt.Fprintf(deps.Stderr, "%s Use 'fundfaq list' to see all questions.\n", notFoundMessage)
		return err
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", fundfaq.ErrorMessage(err))
		return err
	}
}
