package uikit

import (
	"log/slog"
	"os"
)

// uiLogLevel controls the log level for toolkit diagnostics.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var uiLogLevel = new(slog.LevelVar)

// uiLogger is the logger for toolkit diagnostics: layout fallbacks,
// out-of-range clamps, missing fonts.
var uiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uiLogLevel}))

func init() {
	if os.Getenv("UIKIT_DEBUG") != "" {
		uiLogLevel.Set(slog.LevelDebug)
	}
}

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uiLogLevel.Set(slog.LevelDebug)
	} else {
		uiLogLevel.Set(slog.LevelInfo)
	}
}
