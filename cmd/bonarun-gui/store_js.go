//go:build js

package main

import "github.com/charmbracelet/log"

// openStore returns nil: browser builds keep no scores.
func openStore(logger *log.Logger) scoreStore {
	logger.Debug("scores are not kept in the browser")
	return nil
}
