package pipeline

import (
	"context"
	"time"

	"github.com/kbukum/dagkit/logger"
	"github.com/kbukum/dagkit/observability"
)

// WithTracing wraps a Task with OpenTelemetry span creation.
// Each execution creates a span named "{prefix}.{taskName}".
func WithTracing(task Task, prefix string) Task {
	return &tracingTask{inner: task, prefix: prefix}
}

type tracingTask struct {
	inner  Task
	prefix string
}

func (t *tracingTask) Name() string { return t.inner.Name() }

func (t *tracingTask) Run(ctx context.Context, input any) (any, error) {
	spanName := t.prefix + "." + t.inner.Name()
	ctx, span := observability.StartSpan(ctx, spanName)
	defer span.End()

	observability.SetSpanAttribute(ctx, "pipeline.task", t.inner.Name())

	output, err := t.inner.Run(ctx, input)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return output, err
}

// WithMetrics wraps a Task with metric recording.
// Records task count, duration, and errors.
func WithMetrics(task Task, metrics *observability.Metrics) Task {
	return &metricsTask{inner: task, metrics: metrics}
}

type metricsTask struct {
	inner   Task
	metrics *observability.Metrics
}

func (t *metricsTask) Name() string { return t.inner.Name() }

func (t *metricsTask) Run(ctx context.Context, input any) (any, error) {
	start := time.Now()
	output, err := t.inner.Run(ctx, input)
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		t.metrics.RecordError(ctx, "execute", t.inner.Name())
	}
	t.metrics.RecordTask(ctx, t.inner.Name(), status, duration)

	return output, err
}

// WithLogging wraps a Task with execution logging.
// Logs: task name, duration, and success/error status.
func WithLogging(task Task, log *logger.Logger) Task {
	return &loggingTask{inner: task, log: log}
}

type loggingTask struct {
	inner Task
	log   *logger.Logger
}

func (t *loggingTask) Name() string { return t.inner.Name() }

func (t *loggingTask) Run(ctx context.Context, input any) (any, error) {
	start := time.Now()
	output, err := t.inner.Run(ctx, input)
	duration := time.Since(start)

	fields := logger.Fields(
		logger.FieldTask, t.inner.Name(),
		logger.FieldDuration, duration.Milliseconds(),
	)

	if err != nil {
		fields[logger.FieldError] = err.Error()
		t.log.Error("task failed", fields)
	} else {
		t.log.Debug("task completed", fields)
	}
	return output, err
}
