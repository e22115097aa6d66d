// main is the entry point for the altsource CLI.
package main

import (
	"github.com/altsource/altsource/cmd"
	"github.com/altsource/altsource/internal/contract"
	"github.com/altsource/altsource/internal/iocache"
)

func main() {
	defer iocache.CloseCaching()

	if err := cmd.Execute(); err != nil {
		// Close eagerly since LogFatal exits without running defers.
		iocache.CloseCaching()
		contract.LogFatal("Command failed", err)
	}
}
