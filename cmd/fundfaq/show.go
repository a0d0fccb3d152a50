package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/fundfaq"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	id, err := strconv.Atoi(c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid FAQ id %q. Use 'fundfaq list' to see available ids.\n", c.ID)
		return fundfaq.Errorf(fundfaq.EINVALID, "invalid FAQ id %q", c.ID)
	}

	faq, err := deps.FAQs.FindFAQByID(deps.Ctx, id)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fundfaq.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, fundfaq.FormatAnswer(faq))
	return nil
}
