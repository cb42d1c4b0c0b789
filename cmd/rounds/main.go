package main

import (
	"context"
	"fmt"
	"os"

	"github.com/example/rounds/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
