package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/fir/internal/cli"
	"github.com/vvka-141/fir/pkg/fir"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(fir.ExitPanic)
		}
	}()

	if os.Getenv("FIR_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(fir.ExitCodeForError(err))
	}
}
