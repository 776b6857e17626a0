package main

import (
	"fmt"
	"os"

	"github.com/teranos/rnokpp/cmd/rnokpp/commands"
	"github.com/teranos/rnokpp/errors"
	"github.com/teranos/rnokpp/logger"
)

func main() {
	rootCmd := commands.NewRootCmd()
	err := rootCmd.Execute()
	logger.Cleanup()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", errors.UserMessage(err))
		os.Exit(commands.ExitCode(err))
	}
}
