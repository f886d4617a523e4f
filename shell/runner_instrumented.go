package shell

import (
	"context"
	"errors"
	"strings"
	"time"

	"recipepairs"
	"recipepairs/tools"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentedRunner is a Runner that records a span per command and per tool call along with
// command and tool metrics.
type InstrumentedRunner struct {
	runner *Runner
	tracer trace.Tracer

	commandsCounter      metric.Int64Counter
	commandFailedCounter metric.Int64Counter
	commandDurationHist  metric.Float64Histogram
}

// NewInstrumentedRunner initializes an instrumented runner over the given tools.
func NewInstrumentedRunner(sessionID string, tp recipepairs.ToolProvider, log recipepairs.CommandLogger, tracer trace.Tracer, meter metric.Meter) (*InstrumentedRunner, error) {
	commandsCounter, err1 := meter.Int64Counter("shell_commands_total",
		metric.WithDescription("Total number of commands run"))
	commandFailedCounter, err2 := meter.Int64Counter("shell_commands_failed_total",
		metric.WithDescription("Total number of commands that failed"))
	commandDurationHist, err3 := meter.Float64Histogram("shell_command_duration_seconds",
		metric.WithDescription("Duration of a command in seconds"))
	toolCallsCounter, err4 := meter.Int64Counter("tool_calls_total",
		metric.WithDescription("Total number of tool calls executed"))
	toolCallsFailedCounter, err5 := meter.Int64Counter("tool_calls_failed_total",
		metric.WithDescription("Total number of tool calls that failed"))
	toolExecutionTimeHist, err6 := meter.Float64Histogram("tool_execution_time_seconds",
		metric.WithDescription("Time taken to execute individual tools in seconds"))
	if err := errors.Join(err1, err2, err3, err4, err5, err6); err != nil {
		return nil, err
	}

	itp := &instrumentedToolProvider{
		ToolProvider:  tp,
		tracer:        tracer,
		callsCounter:  toolCallsCounter,
		failedCounter: toolCallsFailedCounter,
		durationHist:  toolExecutionTimeHist,
	}

	return &InstrumentedRunner{
		runner:               NewRunner(sessionID, itp, log),
		tracer:               tracer,
		commandsCounter:      commandsCounter,
		commandFailedCounter: commandFailedCounter,
		commandDurationHist:  commandDurationHist,
	}, nil
}

// LastRecipe returns the name of the recipe found by the most recent successful lookup.
func (r *InstrumentedRunner) LastRecipe() string { return r.runner.LastRecipe() }

// Run executes line with full instrumentation.
func (r *InstrumentedRunner) Run(ctx context.Context, line string) (string, error) {
	verb := "unknown"
	if fields := strings.Fields(line); len(fields) > 0 {
		verb = strings.ToLower(fields[0])
	}
	attrs := metric.WithAttributes(attribute.String("command", verb))

	ctx, span := r.tracer.Start(ctx, "InstrumentedRunner.Run", trace.WithAttributes(
		attribute.String("command", verb),
		attribute.String("line", line),
	))
	defer span.End()

	r.commandsCounter.Add(ctx, 1, attrs)

	start := time.Now()
	out, err := r.runner.Run(ctx, line)
	r.commandDurationHist.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		r.commandFailedCounter.Add(ctx, 1, attrs)
		span.SetStatus(codes.Error, "Command failed")
		span.RecordError(err)
		return out, err
	}

	span.AddEvent("Command completed", trace.WithAttributes(
		attribute.Int("output_length", len(out)),
	))
	return out, nil
}

type instrumentedToolProvider struct {
	recipepairs.ToolProvider
	tracer        trace.Tracer
	callsCounter  metric.Int64Counter
	failedCounter metric.Int64Counter
	durationHist  metric.Float64Histogram
}

func (p *instrumentedToolProvider) GetTool(name string) (tools.Tool, error) {
	tool, err := p.ToolProvider.GetTool(name)
	if err != nil {
		p.failedCounter.Add(context.Background(), 1, metric.WithAttributes(
			attribute.String("tool_name", name),
			attribute.String("error_type", "tool_not_found"),
		))
		return nil, err
	}
	return &instrumentedTool{Tool: tool, provider: p}, nil
}

type instrumentedTool struct {
	tools.Tool
	provider *instrumentedToolProvider
}

func (t *instrumentedTool) Run(ctx context.Context, input map[string]any) (map[string]any, error) {
	p := t.provider
	name := t.Name()

	ctx, span := p.tracer.Start(ctx, "Tool."+name, trace.WithAttributes(
		attribute.String("tool_name", name),
	))
	defer span.End()

	p.callsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("tool_name", name)))

	start := time.Now()
	result, err := t.Tool.Run(ctx, input)
	duration := time.Since(start)
	p.durationHist.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String("tool_name", name)))

	if err != nil {
		p.failedCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("tool_name", name),
			attribute.String("error_type", "tool_execution_failed"),
		))
		span.SetStatus(codes.Error, "Tool execution failed")
		span.RecordError(err)
		return nil, err
	}

	span.AddEvent("Tool executed successfully", trace.WithAttributes(
		attribute.Float64("tool_execution_time_seconds", duration.Seconds()),
	))
	return result, nil
}
