package factory

import (
	"context"
	"testing"

	"tux-be/pkg/llm"
)

type recordingProvider struct {
	name  string
	calls *[]string
}

func (p *recordingProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	*p.calls = append(*p.calls, p.name)
	return p.name, nil
}

func TestRouterDispatch(t *testing.T) {
	tests := []struct {
		model string
		want  string
	}{
		{llm.ModelLlama370B, "together"},
		{llm.ModelLlama38B, "together"},
		{llm.ModelMistral7B, "huggingface"},
		{llm.ModelMistral8x7B, "huggingface"},
		{llm.ModelQwen272B, "huggingface"},
		{llm.ModelPhi3Mini, "huggingface"},
		{llm.ModelOpenChat35, "huggingface"},
		{"unknown-model", "huggingface"},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			var calls []string
			r := NewRouter(
				&recordingProvider{name: "together", calls: &calls},
				&recordingProvider{name: "huggingface", calls: &calls},
			)

			got, err := r.Generate(context.Background(), "hi", llm.WithModel(tt.model))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("dispatched to %q, want %q", got, tt.want)
			}
			if len(calls) != 1 {
				t.Errorf("expected exactly one provider call, got %d", len(calls))
			}
		})
	}
}

func TestRouterDefaultModel(t *testing.T) {
	var calls []string
	r := NewRouter(
		&recordingProvider{name: "together", calls: &calls},
		&recordingProvider{name: "huggingface", calls: &calls},
	)

	// Without an explicit model option the empty identifier takes the
	// default branch.
	got, err := r.Generate(context.Background(), "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "huggingface" {
		t.Errorf("dispatched to %q, want huggingface", got)
	}
}
