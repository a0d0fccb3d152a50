package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/fundfaq"
)

const (
	replBanner = `
MUTUAL FUND FAQ ASSISTANT
Factual information from official sources only.
This is NOT investment advice.
`

	replHelp = `Available topics:
  expense ratio, exit load, minimum sip, lock-in/ELSS, riskometer,
  benchmark, download statement, NAV, KYC, AUM

Commands: 'help', 'list', 'quit'`

	replPrompt  = "\nYour question: "
	replGoodbye = "Goodbye!"
	replHint    = "Type 'help' to see available topics or 'list' to see all questions."
)

// Run executes the interactive assistant. It returns nil on quit, end of
// input, or context cancellation.
func (c *ReplCmd) Run(deps *Dependencies) error {
	fmt.Fprint(deps.Stdout, replBanner)
	fmt.Fprintln(deps.Stdout, replHelp)

	lines, done, readErr := readLines(deps.Stdin)
	defer close(done)

	for {
		fmt.Fprint(deps.Stdout, replPrompt)

		var line string
		var ok bool
		select {
		case <-deps.Ctx.Done():
			fmt.Fprintln(deps.Stdout, "\n"+replGoodbye)
			return nil
		case line, ok = <-lines:
		}
		if !ok {
			fmt.Fprintln(deps.Stdout, "\n"+replGoodbye)
			if err := *readErr; err != nil {
				deps.Logger.Warn("failed to read input", "err", err)
			}
			return nil
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "q":
			fmt.Fprintln(deps.Stdout, replGoodbye)
			return nil
		case "help", "h", "?":
			fmt.Fprintln(deps.Stdout, replHelp)
			continue
		case "list", "all", "topics":
			c.list(deps)
			continue
		}

		c.answer(deps, input)
	}
}

func (c *ReplCmd) list(deps *Dependencies) {
	summaries, err := deps.FAQs.FindFAQSummaries(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fundfaq.ErrorMessage(err))
		return
	}
	fmt.Fprintln(deps.Stdout, "All available questions:")
	fmt.Fprintln(deps.Stdout, fundfaq.FormatSummaries(summaries))
}

func (c *ReplCmd) answer(deps *Dependencies, query string) {
	faq, err := deps.Searcher.Search(deps.Ctx, query)
	switch fundfaq.ErrorCode(err) {
	case "":
		fmt.Fprintln(deps.Stdout, fundfaq.FormatAnswer(faq))
	case fundfaq.ENOTFOUND:
		fmt.Fprintln(deps.Stdout, notFoundMessage)
		fmt.Fprintln(deps.Stdout, replHint)
	default:
		fmt.Fprintf(deps.Stderr, "error: %s\n", fundfaq.ErrorMessage(err))
	}
}

// readLines scans r in the background so the loop can also watch the
// context. Closing done stops the scanner goroutine at its next line. The
// returned error is valid once lines is closed.
func readLines(r io.Reader) (<-chan string, chan<- struct{}, *error) {
	lines := make(chan string)
	done := make(chan struct{})
	var err error

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-done:
				return
			}
		}
		err = sc.Err()
	}()

	return lines, done, &err
}
