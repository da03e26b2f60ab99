package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/osse101/BrandishRPG_Go/internal/event"
)

type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string {
	return "dead-letters"
}

func (c *DeadLettersCommand) Description() string {
	return "List events the publisher gave up on (path defaults to EVENT_DEADLETTER_PATH)"
}

func (c *DeadLettersCommand) Run(args []string) error {
	path := getEnv("EVENT_DEADLETTER_PATH", "logs/event_deadletter.jsonl")
	if len(args) > 0 {
		path = args[0]
	}

	entries, err := event.ReadDeadLetters(path)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		PrintSuccess("No dead letters in %s", path)
		return nil
	}

	PrintHeader(fmt.Sprintf("%d dead letters in %s", len(entries), path))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tTYPE\tATTEMPTS\tLAST ERROR")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Event.Type, e.Attempts, e.LastError)
	}
	return w.Flush()
}
