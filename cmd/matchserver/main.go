package main

import (
	"fmt"
	"os"

	"github.com/zerchniv/matchserver/cmd/matchserver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "matchserver: %v\n", err)
		os.Exit(1)
	}
}
