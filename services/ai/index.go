// Package AIService proxies chat generation to external inference
// endpoints and cleans up their raw output per model.
package AIService

import (
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

var (
	// ErrUnknownModel - the requested model id is not in the model table
	ErrUnknownModel = errors.New("unknown model")
	// ErrUpstreamUnavailable - the inference endpoint could not be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrUpstreamError - the inference endpoint answered with a failure
	ErrUpstreamError = errors.New("upstream error")
)

const (
	hfInferenceBaseURL = "https://api-inference.huggingface.co/models/"
	deepseekBaseURL    = "https://api.deepseek.com/v1"
	summaryModel       = "deepseek-chat"
)

type Service struct {
	httpClient     *http.Client
	hfAPIKey       string
	deepseekAPIKey string
	summaryClient  *openai.Client
}

func NewService(hfAPIKey, deepseekAPIKey string) *Service {
	// DeepSeek speaks the OpenAI chat-completions protocol, only the base
	// URL differs.
	config := openai.DefaultConfig(deepseekAPIKey)
	config.BaseURL = deepseekBaseURL

	return &Service{
		httpClient:     &http.Client{Timeout: 60 * time.Second},
		hfAPIKey:       hfAPIKey,
		deepseekAPIKey: deepseekAPIKey,
		summaryClient:  openai.NewClientWithConfig(config),
	}
}
