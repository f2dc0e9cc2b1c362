package monitor

import (
	"context"

	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"

	"proximity.klederson.com/internal/sensor"
)

// Sink receives every event the monitor emits.
type Sink interface {
	Emit(ctx context.Context, ev Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, ev Event)

func (f SinkFunc) Emit(ctx context.Context, ev Event) { f(ctx, ev) }

// MultiSink fans events out to several sinks in order.
type MultiSink []Sink

func (ms MultiSink) Emit(ctx context.Context, ev Event) {
	for _, s := range ms {
		s.Emit(ctx, ev)
	}
}

// LogSink writes events to the logger carried by the context.
type LogSink struct{}

func (LogSink) Emit(ctx context.Context, ev Event) {
	switch ev.Kind {
	case EventPushed:
		logctx.Info(ctx, "enqueued distance", zap.Int("cm", ev.Value))
	case EventEvicted, EventPopped:
		logctx.Debug(ctx, ev.Kind.String(), zap.Int("cm", ev.Value))
	case EventRejected:
		logctx.Warnf(ctx, "buffer is full, cannot enqueue %d", ev.Value)
	case EventActed:
		if ev.Action == sensor.ActionWarn {
			logctx.Warnf(ctx, "object is too close: avg %.1fcm", ev.Average)
		} else {
			logctx.Info(ctx, "average distance", zap.Float64("avg_cm", ev.Average))
		}
	case EventContents:
		logctx.Info(ctx, "buffer contents",
			zap.Ints("values", ev.Contents),
			zap.Int("head", ev.Head),
			zap.Int("tail", ev.Tail),
			zap.Int("count", ev.Count),
		)
	case EventSampleFailed:
		logctx.Error(ctx, "sample failed", zap.Error(ev.Err))
	case EventReset:
		logctx.Info(ctx, "buffer cleared")
	}
}
