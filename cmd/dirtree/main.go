package main

import (
	"os"

	"github.com/tyemirov/dirtree/internal/cli"
	"github.com/tyemirov/dirtree/internal/utils"
)

// main is the entry point for the dirtree command.
func main() {
	loggerInstance := utils.NewApplicationLogger(os.Stderr)
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
