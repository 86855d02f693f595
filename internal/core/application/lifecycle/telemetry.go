package lifecycle

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "foodshare/lifecycle"

type instruments struct {
	tracer trace.Tracer

	claimsDecided       metric.Int64Counter
	deliveriesCompleted metric.Int64Counter
	rewardsSettled      metric.Int64Counter
	settlementFailures  metric.Int64Counter
}

func newInstruments() (*instruments, error) {
	meter := otel.Meter(instrumentationName)

	claimsDecided, err := meter.Int64Counter("foodshare.claims.decided",
		metric.WithDescription("Claims accepted or rejected"))
	if err != nil {
		return nil, fmt.Errorf("create claims counter: %w", err)
	}

	deliveriesCompleted, err := meter.Int64Counter("foodshare.deliveries.completed",
		metric.WithDescription("Deliveries that reached Delivered"))
	if err != nil {
		return nil, fmt.Errorf("create deliveries counter: %w", err)
	}

	rewardsSettled, err := meter.Int64Counter("foodshare.rewards.settled",
		metric.WithDescription("Pending rewards turned into ledger entries"))
	if err != nil {
		return nil, fmt.Errorf("create rewards counter: %w", err)
	}

	settlementFailures, err := meter.Int64Counter("foodshare.rewards.settlement_failures",
		metric.WithDescription("Failed reward settlement attempts"))
	if err != nil {
		return nil, fmt.Errorf("create settlement failures counter: %w", err)
	}

	return &instruments{
		tracer:              otel.Tracer(instrumentationName),
		claimsDecided:       claimsDecided,
		deliveriesCompleted: deliveriesCompleted,
		rewardsSettled:      rewardsSettled,
		settlementFailures:  settlementFailures,
	}, nil
}

func (i *instruments) start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, "lifecycle."+name, trace.WithAttributes(attrs...))
}

// end closes span, marking it failed when err is set.
func end(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
