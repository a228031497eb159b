package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/timelock/cmd/timelock"
)

func main() {
	rootCmd := timelock.BuildTimelockCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
