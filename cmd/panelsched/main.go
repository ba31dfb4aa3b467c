// Command panelsched assigns panelists to time slots from an availability table.
package main

import (
	"os"

	"github.com/katalvlaran/panelsched/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.New("main").Errorf("%v", err)
		os.Exit(1)
	}
}
