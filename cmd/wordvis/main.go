package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/wordvis/internal/cli"
	"github.com/matzehuels/wordvis/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stdout, os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	err := root.ExecuteContext(ctx)
	code := cli.ExitCode(err)
	switch code {
	case 0, 130:
	case 2:
		fmt.Fprintf(os.Stderr, "Error: %s\n%s", errors.UserMessage(err), root.UsageString())
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.UserMessage(err))
	}
	return code
}
