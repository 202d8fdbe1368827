package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("generating formula", "family", "php")

	out := buf.String()
	if out == "" {
		t.Fatal("logger should have written output")
	}
	if !strings.Contains(out, "generating formula") {
		t.Errorf("output %q misses the message", out)
	}
	if !strings.Contains(out, "family=php") {
		t.Errorf("output %q misses the key-value pair", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("wrote formula") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("serializing formula") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("serializing formula") },
			wantLog: true,
		},
		{
			name:    "error at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Error("job failed") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	prog := newProgress(logger)
	if prog == nil {
		t.Fatal("newProgress() returned nil")
	}

	// Small delay to ensure measurable duration
	time.Sleep(10 * time.Millisecond)

	prog.done("Formula is satisfiable")

	out := buf.String()
	if !strings.Contains(out, "Formula is satisfiable") {
		t.Errorf("progress output %q misses the message", out)
	}
	if !strings.Contains(out, "ms)") && !strings.Contains(out, "s)") {
		t.Errorf("progress output %q misses the elapsed time", out)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.DebugLevel)

	ctx := withLogger(context.Background(), logger)

	retrieved := loggerFromContext(ctx)
	if retrieved != logger {
		t.Error("loggerFromContext should return the logger stored by withLogger")
	}

	retrieved.Debug("checking satisfiability")
	if buf.Len() == 0 {
		t.Error("retrieved logger should write to the original buffer")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	// Without a logger in the context the commands must still be able
	// to log, so the default logger comes back.
	logger := loggerFromContext(context.Background())
	if logger == nil {
		t.Error("loggerFromContext should return the default logger when none is set")
	}
}
