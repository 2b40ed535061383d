package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/quantimg/featplan/internal/adapters/logger"
)

// capture redirects a fresh logger into a buffer and returns what fn logged.
func capture(fn func(lg *logger.Logger)) string {
	lg, ok := logger.New().(*logger.Logger)
	if !ok {
		panic("logger.New did not return *logger.Logger")
	}
	var buf bytes.Buffer
	lg.SetOutput(&buf)
	fn(lg)
	return buf.String()
}

func TestLogger_Info(t *testing.T) {
	output := capture(func(lg *logger.Logger) {
		lg.Info("analyzed 12 configurations")
	})

	if !strings.Contains(output, "analyzed 12 configurations") {
		t.Errorf("expected output to contain the message, got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Warn(t *testing.T) {
	output := capture(func(lg *logger.Logger) {
		lg.Warn("no reuse possible")
	})

	if !strings.Contains(output, "no reuse possible") {
		t.Errorf("expected output to contain the message, got: %s", output)
	}
	if !strings.Contains(output, "WARN") {
		t.Errorf("expected output to contain 'WARN', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output := capture(func(lg *logger.Logger) {
		lg.Error(os.ErrPermission)
	})

	if !strings.Contains(output, "permission denied") {
		t.Errorf("expected output to contain the error, got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("expected output to contain 'ERROR', got: %s", output)
	}
}

func TestNew(t *testing.T) {
	if logger.New() == nil {
		t.Fatal("expected New() to return a non-nil logger")
	}
}
