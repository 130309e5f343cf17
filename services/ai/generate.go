package AIService

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/okanay/backend-chat-api/configs"
	"github.com/okanay/backend-chat-api/types"
)

type hfRequest struct {
	Inputs     string                 `json:"inputs"`
	Parameters types.GenerationParams `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

// Generate asks the configured inference endpoint for a reply to message.
// history is the conversation so far, oldest first; only models that need
// it get it in their prompt. Returns ErrUpstreamUnavailable/ErrUpstreamError
// so the caller can degrade to a simulated reply.
func (s *Service) Generate(ctx context.Context, modelID string, history []types.ChatMessage, message string, language types.Language) (string, error) {
	model, exists := AvailableModels[modelID]
	if !exists {
		return "", ErrUnknownModel
	}

	payload := hfRequest{
		Inputs:     buildPrompt(modelID, history, message, language),
		Parameters: model.Params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal inference payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hfInferenceBaseURL+model.Path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build inference request: %w", err)
	}

	apiKey := s.hfAPIKey
	if modelID == "deepseek" {
		apiKey = s.deepseekAPIKey
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("[ai] inference error for %s: %d - %s", modelID, resp.StatusCode, snippet)
		return "", fmt.Errorf("%w: status %d", ErrUpstreamError, resp.StatusCode)
	}

	var generations []hfGeneration
	if err := json.NewDecoder(resp.Body).Decode(&generations); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamError, err)
	}
	if len(generations) == 0 {
		return "", fmt.Errorf("%w: empty generation list", ErrUpstreamError)
	}

	return ExtractResponse(modelID, generations[0].GeneratedText, message, language), nil
}

// buildPrompt formats the model input. deepseek is instruction-tuned on
// dialogue transcripts, so it gets the recent history with role markers;
// the other models take the bare message.
func buildPrompt(modelID string, history []types.ChatMessage, message string, language types.Language) string {
	if modelID != "deepseek" {
		return message
	}

	userPrefix, botPrefix := rolePrefixes(language)

	recent := history
	if len(recent) > configs.AI_HISTORY_MESSAGE_COUNT {
		recent = recent[len(recent)-configs.AI_HISTORY_MESSAGE_COUNT:]
	}

	var b strings.Builder
	for _, msg := range recent {
		prefix := botPrefix
		if msg.IsUserMessage {
			prefix = userPrefix
		}
		b.WriteString(prefix)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	b.WriteString(userPrefix)
	b.WriteString(": ")
	b.WriteString(message)
	b.WriteString("\n")
	b.WriteString(botPrefix)
	b.WriteString(":")

	return b.String()
}

// ExtractResponse cleans a model's raw generation into the text shown to
// the user. Each model misbehaves in its own way.
func ExtractResponse(modelID, generated, message string, language types.Language) string {
	switch modelID {
	case "deepseek":
		return extractDeepseekResponse(generated, message, language)
	default:
		text := strings.TrimSpace(generated)
		if text == "" {
			return cannedText(language, cannedFallback)
		}
		return text
	}
}

// deepseek tends to echo the whole transcript back, so the new reply has
// to be carved out of it.
func extractDeepseekResponse(generated, message string, language types.Language) string {
	userPrefix, botPrefix := rolePrefixes(language)
	generated = strings.TrimSpace(generated)

	marker := userPrefix + ": " + message
	if idx := strings.LastIndex(generated, marker); idx >= 0 {
		response := strings.TrimSpace(generated[idx+len(marker):])
		if response == "" || strings.Contains(response, userPrefix+":") {
			return cannedText(language, cannedFallback)
		}
		return strings.TrimSpace(strings.ReplaceAll(response, botPrefix+":", ""))
	}

	// Our message is not in the echo, take the last line that is not a
	// user turn.
	var lines []string
	for _, line := range strings.Split(generated, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, userPrefix+":") {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return cannedText(language, cannedUnderstanding)
	}

	return strings.TrimSpace(strings.ReplaceAll(lines[len(lines)-1], botPrefix+":", ""))
}
