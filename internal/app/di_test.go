package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/config"
	"github.com/allisson/checkdigit/internal/metrics"
)

// TestNewContainer verifies that a new container can be created with a valid configuration.
func TestNewContainer(t *testing.T) {
	cfg := &config.Config{
		LogLevel:         "info",
		MaxNumberLength:  255,
		BatchConcurrency: 8,
		GenerateMaxCount: 1000,
		MetricsNamespace: "checkdigit",
	}

	container := NewContainer(cfg)

	if container == nil {
		t.Fatal("expected non-nil container")
	}

	if container.Config() != cfg {
		t.Error("container config does not match provided config")
	}
}

// TestContainerLogger verifies that the logger can be retrieved from the container.
func TestContainerLogger(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "debug"})
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}

	// Calling Logger() again should return the same instance (singleton)
	if logger != container.Logger() {
		t.Error("expected same logger instance on multiple calls")
	}
}

// TestContainerLoggerDefaultLevel verifies that logger defaults to info level.
func TestContainerLoggerDefaultLevel(t *testing.T) {
	container := NewContainer(&config.Config{LogLevel: "invalid"})
	logger := container.Logger()

	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be disabled by default")
	}
}

// TestContainerMetricsDisabled verifies the no-op wiring when metrics are off.
func TestContainerMetricsDisabled(t *testing.T) {
	container := NewContainer(&config.Config{MetricsEnabled: false})

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider != nil {
		t.Error("expected nil metrics provider when metrics are disabled")
	}

	businessMetrics, err := container.BusinessMetrics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := businessMetrics.(*metrics.NoOpBusinessMetrics); !ok {
		t.Errorf("expected no-op business metrics, got %T", businessMetrics)
	}
}

// TestContainerCheckDigitUseCase verifies the use case is built once and honours the configured limits.
func TestContainerCheckDigitUseCase(t *testing.T) {
	container := NewContainer(&config.Config{
		MaxNumberLength:  4,
		BatchConcurrency: 2,
		GenerateMaxCount: 10,
	})

	uc, err := container.CheckDigitUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uc2, err := container.CheckDigitUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc != uc2 {
		t.Error("expected same use case instance on multiple calls")
	}

	result, err := uc.Compute(context.Background(), domain.DocumentAgenciaBB, "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CheckDigits != "3" {
		t.Errorf("expected check digit 3, got %s", result.CheckDigits)
	}

	if _, err := uc.Compute(context.Background(), domain.DocumentModulo11, "12345"); err == nil {
		t.Error("expected error for number longer than configured maximum")
	}
}

// TestContainerMetricsEnabled verifies the use case records metrics into the provider.
func TestContainerMetricsEnabled(t *testing.T) {
	container := NewContainer(&config.Config{
		MetricsEnabled:   true,
		MetricsNamespace: "checkdigit",
	})

	uc, err := container.CheckDigitUseCase()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Compute(context.Background(), domain.DocumentCPF, "345678123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	provider, err := container.MetricsProvider()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider == nil {
		t.Fatal("expected non-nil metrics provider")
	}

	var buf bytes.Buffer
	if err := provider.WriteTo(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "checkdigit_operations_total") {
		t.Errorf("expected operations counter in output, got:\n%s", buf.String())
	}

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}

// TestContainerShutdown verifies that shutdown works even when nothing was initialized.
func TestContainerShutdown(t *testing.T) {
	container := NewContainer(&config.Config{})

	if err := container.Shutdown(context.Background()); err != nil {
		t.Errorf("unexpected shutdown error: %v", err)
	}
}
