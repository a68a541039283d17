package factory

import (
	"context"

	"tux-be/pkg/llm"
)

// Router dispatches a call to the provider owning the requested logical
// model: llama3 identifiers go to Together, everything else (including
// unknown identifiers) to HuggingFace.
type Router struct {
	together    llm.Provider
	huggingface llm.Provider
}

func NewRouter(together, huggingface llm.Provider) *Router {
	return &Router{
		together:    together,
		huggingface: huggingface,
	}
}

func (r *Router) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	opts := llm.DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	switch opts.Model {
	case llm.ModelLlama370B, llm.ModelLlama38B:
		return r.together.Generate(ctx, prompt, options...)
	default:
		return r.huggingface.Generate(ctx, prompt, options...)
	}
}
