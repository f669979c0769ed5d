package server

import (
	"log"

	"github.com/fatih/color"
)

// logServed logs a completed connection in green
func logServed(remote string, requestBytes int) {
	log.Print(color.GreenString("%s served (%d request bytes)", remote, requestBytes))
}

// logError logs a per-connection failure in red; failures here are never fatal
func logError(remote, phase string, err error) {
	log.Print(color.RedString("%s %s error: %v", remote, phase, err))
}
