package together

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"tux-be/pkg/llm"
)

// Backend model names for the Together inference API. An unrecognized
// logical identifier falls back to the llama3-8b mapping.
var modelMap = map[string]string{
	llm.ModelLlama370B: "meta-llama/Llama-3-70b-chat-hf",
	llm.ModelLlama38B:  "meta-llama/Llama-3-8b-chat-hf",
}

const defaultModel = llm.ModelLlama38B

type Provider struct {
	apiKey  string
	baseURL string
}

type inferenceRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type inferenceResponse struct {
	Output struct {
		Choices []struct {
			Text string `json:"text"`
		} `json:"choices"`
	} `json:"output"`
}

func New(apiKey, baseURL string) *Provider {
	if baseURL == "" {
		baseURL = "https://api.together.xyz"
	}
	return &Provider{
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (p *Provider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("together: %w", llm.ErrProviderUnavailable)
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
		Model:       backendModel,
		Prompt:      prompt,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		TopP:        opts.TopP,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/inference", p.baseURL)
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
			Provider:   "together",
			StatusCode: resp.StatusCode,
			Body:       string(bodyBytes),
		}
	}

	var infResp inferenceResponse
	if err := json.Unmarshal(bodyBytes, &infResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(infResp.Output.Choices) == 0 {
		return "", fmt.Errorf("empty choices from together api")
	}

	return infResp.Output.Choices[0].Text, nil
}
