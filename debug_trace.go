package blakeout

import (
	"encoding/hex"
	"fmt"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via BLAKEOUT_DEBUG env var
var debugEnabled = os.Getenv("BLAKEOUT_DEBUG") == "1"

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Printf("[TRACE] "+format+"\n", args...)
	}
}

// traceBytes outputs bytes in hex format with a descriptive name
func traceBytes(name string, data []byte) {
	if debugEnabled {
		fmt.Printf("[TRACE] %s (%d bytes): %s\n", name, len(data), hex.EncodeToString(data))
	}
}

// traceSeparator prints a visual separator in debug output
func traceSeparator(title string) {
	if debugEnabled {
		fmt.Printf("[TRACE] ========== %s ==========\n", title)
	}
}
