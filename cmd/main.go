package main

import (
	"context"
	"fmt"
	"os"

	"github.com/goserg/batchrating/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCommand().ExecuteContext(context.Background())
}
