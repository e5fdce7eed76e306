package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BusinessMetrics defines the interface for recording check digit operation metrics.
// Every series is labelled by operation, document type and status.
type BusinessMetrics interface {
	// RecordOperation records a business operation with its status.
	// Operation examples: "compute", "verify", "generate", "compute_batch"
	// Document type examples: "cpf", "agencia-bb"
	// Status examples: "success", "error"
	RecordOperation(ctx context.Context, operation, documentType, status string)

	// RecordDuration records the duration of a business operation with its status.
	// Duration is recorded in seconds as a histogram for percentile calculations.
	RecordDuration(ctx context.Context, operation, documentType string, duration time.Duration, status string)

	// RecordBatchItems adds count processed batch items with the given status.
	RecordBatchItems(ctx context.Context, documentType, status string, count int)
}

// businessMetrics implements BusinessMetrics using OpenTelemetry metrics.
type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	batchItemCounter metric.Int64Counter
}

// NewBusinessMetrics creates a new BusinessMetrics implementation using the provided meter provider.
// The namespace parameter is used as a prefix for all metric names (e.g., "checkdigit").
// Returns error if meters cannot be initialized.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of check digit operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of check digit operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	batchItemCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_batch_items_total", namespace),
		metric.WithDescription("Total number of numbers processed in batches"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch item counter: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		batchItemCounter: batchItemCounter,
	}, nil
}

// RecordOperation increments the operation counter.
func (b *businessMetrics) RecordOperation(ctx context.Context, operation, documentType, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("document_type", documentType),
			attribute.String("status", status),
		),
	)
}

// RecordDuration records the operation duration in seconds.
func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	operation, documentType string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("document_type", documentType),
			attribute.String("status", status),
		),
	)
}

// RecordBatchItems adds count to the batch item counter. Zero counts are skipped.
func (b *businessMetrics) RecordBatchItems(ctx context.Context, documentType, status string, count int) {
	if count <= 0 {
		return
	}
	b.batchItemCounter.Add(ctx, int64(count),
		metric.WithAttributes(
			attribute.String("document_type", documentType),
			attribute.String("status", status),
		),
	)
}

// NoOpBusinessMetrics is a no-op implementation of BusinessMetrics for when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

// RecordOperation does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, operation, documentType, status string) {
}

// RecordDuration does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	operation, documentType string,
	duration time.Duration,
	status string,
) {
}

// RecordBatchItems does nothing when metrics are disabled.
func (n *NoOpBusinessMetrics) RecordBatchItems(ctx context.Context, documentType, status string, count int) {
}
