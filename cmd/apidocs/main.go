package main

import (
	"fmt"
	"os"

	"apidocs/internal/cli"
)

func main() {
	err := cli.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
