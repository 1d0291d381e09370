package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

func TestConsoleLogger_Verbose_WhenEnabled(t *testing.T) {
	// Capture stderr
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(true)
	logger.Verbose("test message: %s", "value")

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	output := buf.String()

	expected := "[VERBOSE] test message: value\n"
	if output != expected {
		t.Errorf("Expected %q, got %q", expected, output)
	}
}

func TestConsoleLoggerTo_Levels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{"verbose disabled", false, func(l *ConsoleLogger) { l.Verbose("scan %s", "src") }, ""},
		{"verbose enabled", true, func(l *ConsoleLogger) { l.Verbose("scan %s", "src") }, "[VERBOSE] scan src\n"},
		{"info", false, func(l *ConsoleLogger) { l.Info("found %d files", 3) }, "found 3 files\n"},
		{"error", false, func(l *ConsoleLogger) { l.Error("cannot read %s", "a.js") }, "[ERROR] cannot read a.js\n"},
		{"no args keeps percent", false, func(l *ConsoleLogger) { l.Info("100%") }, "100%\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(NewConsoleLoggerTo(&buf, tt.verbose))
			if buf.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestMemoryLogger_Records(t *testing.T) {
	logger := NewMemoryLogger()
	logger.Verbose("walking %s", "src")
	logger.Info("done")
	logger.Error("failed to read %s", "lib/a.js")

	entries := logger.Entries()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0] != (Entry{Level: LevelVerbose, Message: "walking src"}) {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if logger.Count(LevelError) != 1 {
		t.Errorf("Expected 1 error entry, got %d", logger.Count(LevelError))
	}
	if !logger.Contains(LevelError, "lib/a.js") {
		t.Error("Expected error entry mentioning lib/a.js")
	}
	if logger.Contains(LevelInfo, "lib/a.js") {
		t.Error("Info entries should not mention lib/a.js")
	}
}

func TestConsoleLogger_ConcurrentSafety(t *testing.T) {
	// Capture stderr
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	logger := NewConsoleLogger(true)

	// Use a channel to read output in background
	outputCh := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outputCh <- buf.String()
	}()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	wg.Wait()
	w.Close()
	os.Stderr = old
	output := <-outputCh

	// Verify we got all messages (10 * 3 = 30 lines)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 30 {
		t.Errorf("Expected 30 lines, got %d", len(lines))
	}

	// Verify no interleaved output (each line should be complete)
	for i, line := range lines {
		if !strings.Contains(line, "message") && !strings.Contains(line, "verbose") && !strings.Contains(line, "error") {
			t.Errorf("Line %d appears corrupted: %q", i, line)
		}
	}
}

func TestNullLogger_DiscardsAllMessages(t *testing.T) {
	// Capture stdout to verify nothing is written
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	logger := NewNullLogger()
	logger.Verbose("verbose")
	logger.Info("info")
	logger.Error("error")

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	io.Copy(&buf, r)
	output := buf.String()

	if output != "" {
		t.Errorf("NullLogger should discard all messages, got: %q", output)
	}
}

func TestNullLogger_ConcurrentSafety(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("message %d", id)
			logger.Verbose("verbose %d", id)
			logger.Error("error %d", id)
		}(i)
	}

	// Should complete without panic
	wg.Wait()
}

// BenchmarkConsoleLogger_Verbose measures performance of verbose logging
func BenchmarkConsoleLogger_Verbose(b *testing.B) {
	// Redirect stderr to /dev/null equivalent
	old := os.Stderr
	os.Stderr, _ = os.Open(os.DevNull)
	defer func() { os.Stderr = old }()

	logger := NewConsoleLogger(true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// BenchmarkConsoleLogger_VerboseDisabled measures performance when verbose is disabled
func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLogger(false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Verbose("benchmark message %d", i)
	}
}

// BenchmarkNullLogger measures performance of null logger
func BenchmarkNullLogger(b *testing.B) {
	logger := NewNullLogger()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message %d", i)
	}
}

func ExampleNewConsoleLoggerTo() {
	logger := NewConsoleLoggerTo(os.Stdout, true)
	logger.Info("Searching utils.js in ./src")
	logger.Verbose("Loaded 4 ignore entries from .gitignore")
	logger.Error("Failed to read src/locked.js: permission denied")
	// Output:
	// Searching utils.js in ./src
	// [VERBOSE] Loaded 4 ignore entries from .gitignore
	// [ERROR] Failed to read src/locked.js: permission denied
}

// Example demonstrates NullLogger usage
func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("This message is discarded")
	logger.Verbose("This too")
	logger.Error("And this")
	fmt.Println("Done")
	// Output:
	// Done
}
