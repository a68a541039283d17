package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tux-be/pkg/llm"
)

// Backend model names for the HuggingFace Inference API. An unrecognized
// logical identifier falls back to the mistral-7b mapping.
var modelMap = map[string]string{
	llm.ModelMistral7B:   "mistralai/Mistral-7B-Instruct-v0.1",
	llm.ModelMistral8x7B: "mistralai/Mixtral-8x7B-Instruct-v0.1",
	llm.ModelPhi3Mini:    "microsoft/Phi-3-mini-4k-instruct",
	llm.ModelQwen272B:    "Qwen/Qwen2-72B-Instruct",
}

const defaultModel = llm.ModelMistral7B

type Provider struct {
	apiKey  string
	baseURL string
}

type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
}

type inferenceParameters struct {
	MaxNewTokens   int     `json:"max_new_tokens"`
	Temperature    float64 `json:"temperature"`
	TopP           float64 `json:"top_p"`
	ReturnFullText bool    `json:"return_full_text"`
}

type inferenceResponse struct {
	GeneratedText string `json:"generated_text"`
}

func New(apiKey, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co/models"
	}
	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("huggingface: %w", llm.ErrProviderUnavailable)
	}

	opts := llm.DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	backendModel, ok := modelMap[opts.Model]
	if !ok {
		backendModel = modelMap[defaultModel]
	}

	reqBody := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   opts.MaxTokens,
			Temperature:    opts.Temperature,
			TopP:           opts.TopP,
			ReturnFullText: false,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", p.baseURL, backendModel)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", p.apiKey))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", &llm.UpstreamError{
			Provider:   "huggingface",
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	// The inference API answers either with an array whose first element
	// holds the generated text, or with a single object.
	var asList []inferenceResponse
	if err := json.Unmarshal(bodyBytes, &asList); err == nil {
		if len(asList) == 0 {
			return "", fmt.Errorf("empty response from huggingface api")
		}
		return asList[0].GeneratedText, nil
	}

	var asObject inferenceResponse
	if err := json.Unmarshal(bodyBytes, &asObject); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return asObject.GeneratedText, nil
}
