// Package integration provides end-to-end tests that wire configuration, the DI container,
// and the CLI commands together against the real check digit engine.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/checkdigit/cmd/app/commands"
	"github.com/allisson/checkdigit/internal/app"
	"github.com/allisson/checkdigit/internal/checkdigit/domain"
	"github.com/allisson/checkdigit/internal/config"
)

// integrationTestContext holds the wired container for a test.
type integrationTestContext struct {
	container *app.Container
	logger    *slog.Logger
}

func setupIntegrationTest(t *testing.T, env map[string]string) *integrationTestContext {
	t.Helper()

	t.Chdir(t.TempDir())
	for key, value := range env {
		t.Setenv(key, value)
	}

	container := app.NewContainer(config.Load())
	t.Cleanup(func() {
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	return &integrationTestContext{
		container: container,
		logger:    slog.New(slog.DiscardHandler),
	}
}

func TestIntegration_ComputeKnownVectors(t *testing.T) {
	itc := setupIntegrationTest(t, nil)
	uc, err := itc.container.CheckDigitUseCase()
	require.NoError(t, err)

	tests := []struct {
		documentType string
		number       string
		expected     string
	}{
		{"cpf", "345678123", "79"},
		{"cpf", "111444777", "35"},
		{"cnpj", "112223330001", "8"},
		{"cnpj-full", "112223330001", "81"},
		{"pis", "1201234567", "2"},
		{"rg-sp", "24678131", "2"},
		{"agencia-bb", "6789", "X"},
		{"conta-corrente-bb", "210169", "6"},
		{"modulo10", "4012888888881881", "3"},
		{"modulo11", "261533", "9"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.documentType, tt.number), func(t *testing.T) {
			var out bytes.Buffer
			err := commands.RunCompute(
				context.Background(), uc, itc.logger, &out, tt.documentType, []string{tt.number}, "text",
			)

			require.NoError(t, err)
			assert.Equal(t, fmt.Sprintf("%s %s %s%s\n", tt.number, tt.expected, tt.number, tt.expected), out.String())
		})
	}
}

func TestIntegration_GenerateThenVerify(t *testing.T) {
	itc := setupIntegrationTest(t, nil)
	uc, err := itc.container.CheckDigitUseCase()
	require.NoError(t, err)
	ctx := context.Background()

	for _, documentType := range domain.DocumentTypes() {
		t.Run(documentType.String(), func(t *testing.T) {
			length := 0
			if !documentType.IsFixedLength() {
				length = 12
			}

			var generated bytes.Buffer
			err := commands.RunGenerate(ctx, uc, itc.logger, &generated, documentType.String(), length, 5, "text")
			require.NoError(t, err)

			numbers := strings.Fields(generated.String())
			require.Len(t, numbers, 5)

			var verified bytes.Buffer
			err = commands.RunVerify(ctx, uc, itc.logger, &verified, documentType.String(), numbers, "text")
			require.NoError(t, err)
			assert.Equal(t, 5, strings.Count(verified.String(), " valid\n"))
		})
	}
}

func TestIntegration_BatchWithLimits(t *testing.T) {
	itc := setupIntegrationTest(t, map[string]string{
		"MAX_NUMBER_LENGTH": "6",
		"BATCH_CONCURRENCY": "2",
	})
	uc, err := itc.container.CheckDigitUseCase()
	require.NoError(t, err)

	var out bytes.Buffer
	io := commands.IOTuple{
		Reader: strings.NewReader("00001\n210169\n1234567\n12a4\n"),
		Writer: &out,
	}
	err = commands.RunBatch(context.Background(), uc, itc.logger, io, "conta-corrente-bb", "json")
	require.NoError(t, err)

	var report domain.BatchReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 2, report.ErrorCount)
	require.Len(t, report.Items, 4)
	assert.Equal(t, "9", report.Items[0].CheckDigits)
	assert.Equal(t, "6", report.Items[1].CheckDigits)
	assert.Contains(t, report.Items[2].Error, domain.ErrNumberTooLong.Error())
	assert.Contains(t, report.Items[3].Error, "account number")
}

func TestIntegration_MetricsEnabled(t *testing.T) {
	itc := setupIntegrationTest(t, map[string]string{
		"METRICS_ENABLED":   "true",
		"METRICS_NAMESPACE": "itest",
	})
	uc, err := itc.container.CheckDigitUseCase()
	require.NoError(t, err)
	ctx := context.Background()

	err = commands.RunCompute(ctx, uc, itc.logger, &bytes.Buffer{}, "cpf", []string{"345678123"}, "text")
	require.NoError(t, err)

	err = commands.RunVerify(ctx, uc, itc.logger, &bytes.Buffer{}, "cpf", []string{"34567812300"}, "text")
	require.ErrorIs(t, err, commands.ErrVerificationFailed)

	provider, err := itc.container.MetricsProvider()
	require.NoError(t, err)
	require.NotNil(t, provider)

	var metricsOut bytes.Buffer
	require.NoError(t, provider.WriteTo(&metricsOut))
	assert.Contains(t, metricsOut.String(), "itest_operations_total")
	assert.Contains(t, metricsOut.String(), `operation="compute"`)
	assert.Contains(t, metricsOut.String(), `operation="verify"`)
	assert.Contains(t, metricsOut.String(), "itest_operation_duration_seconds")
}
