package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component field helpers for common component names
func Component(name string) Field {
	return String("component", name)
}

func Operation(op string) Field {
	return String("operation", op)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Count(n int) Field {
	return Int("count", n)
}

func Path(p string) Field {
	return String("path", p)
}

// IterationFields builds the field set for one negotiator iteration row,
// shared by every structured-log call site so the key names stay consistent
// between the CLI's StructuredLogger and any future consumer.
func IterationFields(invocationID string, iteration, conflicts int, longestPathCost float64, totalWireUse int, wireReuse float64, unreachableSignals int) []Field {
	return []Field{
		String("invocation_id", invocationID),
		Int("iteration", iteration),
		Int("conflicts", conflicts),
		Float64("longest_path_cost", longestPathCost),
		Int("total_wire_use", totalWireUse),
		Float64("wire_reuse", wireReuse),
		Int("unreachable_signals", unreachableSignals),
	}
}
