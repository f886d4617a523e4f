package shell

import (
	"context"
	"testing"

	"recipepairs/session"
	"recipepairs/tools"
	"recipepairs/tools/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newInstrumentedTestRunner(t *testing.T, sink storage.ListSink) (*InstrumentedRunner, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	s := session.New(testRecipesText)
	registry, err := tools.NewRegistry(s, sink)
	require.NoError(t, err)

	runner, err := NewInstrumentedRunner(s.ID, registry, nil, tp.Tracer("test"), mp.Meter("test"))
	require.NoError(t, err)
	return runner, recorder, reader
}

// sumByName collects every Int64 counter total keyed by metric name
func sumByName(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	return sums
}

func TestInstrumentedRunner_Run(t *testing.T) {
	ctx := context.Background()
	runner, recorder, reader := newInstrumentedTestRunner(t, storage.NewTestListSink())

	out, err := runner.Run(ctx, "lookup soup")
	require.NoError(t, err)
	assert.Contains(t, out, "Tomato Soup")
	assert.Equal(t, "Tomato Soup", runner.LastRecipe())

	_, err = runner.Run(ctx, "add salt")
	require.NoError(t, err)

	_, err = runner.Run(ctx, "fry eggs")
	require.Error(t, err)

	spans := recorder.Ended()
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"Tool.recipe_lookup",
		"InstrumentedRunner.Run",
		"Tool.shopping_list_add",
		"InstrumentedRunner.Run",
		"InstrumentedRunner.Run",
	}, names)

	assert.Equal(t, spans[1].SpanContext().SpanID(), spans[0].Parent().SpanID(), "tool span is a child of the command span")
	assert.Equal(t, codes.Error, spans[4].Status().Code)
	assert.Equal(t, codes.Unset, spans[1].Status().Code)

	sums := sumByName(t, reader)
	assert.Equal(t, int64(3), sums["shell_commands_total"])
	assert.Equal(t, int64(1), sums["shell_commands_failed_total"])
	assert.Equal(t, int64(2), sums["tool_calls_total"])
	assert.Zero(t, sums["tool_calls_failed_total"])
}

func TestInstrumentedRunner_ToolFailure(t *testing.T) {
	runner, recorder, reader := newInstrumentedTestRunner(t, storage.NewTestListSinkWithError())

	_, err := runner.Run(context.Background(), "export")
	require.Error(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "Tool.shopping_list_export", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)

	sums := sumByName(t, reader)
	assert.Equal(t, int64(1), sums["tool_calls_total"])
	assert.Equal(t, int64(1), sums["tool_calls_failed_total"])
	assert.Equal(t, int64(1), sums["shell_commands_failed_total"])
}
