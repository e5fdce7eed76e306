package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNewBusinessMetrics(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")

	require.NoError(t, err)
	assert.NotNil(t, businessMetrics)
}

func TestBusinessMetrics_RecordDoesNotPanic(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	ctx := context.Background()
	assert.NotPanics(t, func() {
		bm.RecordOperation(ctx, "compute", "cpf", "success")
		bm.RecordOperation(ctx, "verify", "agencia-bb", "error")
		bm.RecordDuration(ctx, "compute", "cpf", 123*time.Microsecond, "success")
		bm.RecordBatchItems(ctx, "pis", "success", 10)
		bm.RecordBatchItems(ctx, "pis", "error", 0)
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()

	assert.NotNil(t, noOpMetrics)
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	assert.NotPanics(t, func() {
		noOpMetrics.RecordOperation(context.Background(), "compute", "cpf", "success")
		noOpMetrics.RecordDuration(context.Background(), "compute", "cpf", time.Millisecond, "error")
		noOpMetrics.RecordBatchItems(context.Background(), "cpf", "success", 3)
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "compute", "cpf", "success")
	bm.RecordOperation(ctx, "compute", "cpf", "success")
	bm.RecordOperation(ctx, "compute", "cpf", "error")
	bm.RecordOperation(ctx, "verify", "cnpj", "success")

	bm.RecordDuration(ctx, "compute", "cpf", 50*time.Microsecond, "success")
	bm.RecordDuration(ctx, "compute", "cpf", 60*time.Microsecond, "success")

	bm.RecordBatchItems(ctx, "rg-sp", "success", 7)
	bm.RecordBatchItems(ctx, "rg-sp", "error", 2)

	var out bytes.Buffer
	require.NoError(t, provider.WriteTo(&out))
	output := out.String()

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`document_type="cpf".*operation="compute".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`document_type="cpf".*operation="compute".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`document_type="cnpj".*operation="verify".*status="success"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`document_type="cpf".*operation="compute".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_batch_items_total`,
		`document_type="rg-sp".*status="success"`,
		`7`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_batch_items_total`,
		`document_type="rg-sp".*status="error"`,
		`2`,
	)
}
