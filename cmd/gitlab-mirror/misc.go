package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-andiamo/splitter"
)

func initTrace(debugLevel string, noLogTime bool) *slog.Logger {
	handlerOptions := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	if noLogTime {
		handlerOptions.ReplaceAttr = func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{} // Remove the time attribute
			}
			return a
		}
	}

	switch debugLevel {
	case "debug":
		handlerOptions.Level = slog.LevelDebug
		handlerOptions.AddSource = true
	case "info":
		handlerOptions.Level = slog.LevelInfo
	case "warn":
		handlerOptions.Level = slog.LevelWarn
	case "error":
		handlerOptions.Level = slog.LevelError
	default:
		handlerOptions.Level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, handlerOptions)
	logger := slog.New(handler)
	return logger
}

// parseGroupIDs splits a comma or space separated list of group IDs or full
// group paths. Quoting is honored so paths could in principle contain spaces.
func parseGroupIDs(raw string) ([]string, error) {
	idSplitter, err := splitter.NewSplitter(',', splitter.SingleQuotes, splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("failed to create group id splitter: %w", err)
	}
	trimmer := splitter.Trim("'\" ")
	parts, err := idSplitter.Split(raw, trimmer)
	if err != nil {
		return nil, fmt.Errorf("failed to parse group ids '%s': %w", raw, err)
	}
	var ids []string
	for _, part := range parts {
		for _, field := range strings.Fields(part) {
			ids = append(ids, field)
		}
	}
	return ids, nil
}
