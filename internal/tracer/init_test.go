package tracer

import (
	"context"
	"testing"
)

func TestInitTracerDisabled(t *testing.T) {
	shutdown := InitTracer(false, "collector:4318")
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("disabled tracer shutdown returned %v", err)
	}
}
