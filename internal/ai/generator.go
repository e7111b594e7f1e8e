// Package ai implements the routine/motivation generator against any
// OpenAI-compatible chat-completions endpoint. The engine only sees the
// Generator interface; a failed or abandoned call never touches state.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"supercharge/internal/engine"
)

type Client struct {
	api   *openai.Client
	model string
}

func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}, nil
}

// Motivation generates a short personalized motivational message.
func (c *Client) Motivation(ctx context.Context, user engine.Profile) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You write short, personal daily motivational messages. Reply with the message only, two or three sentences, no preamble.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("Write today's motivational message for %s, age %d, whose primary goal is: %s.", user.Name, user.Age, user.Goal),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("motivation request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("motivation request: empty response")
	}
	msg := strings.TrimSpace(resp.Choices[0].Message.Content)
	if msg == "" {
		return "", errors.New("motivation request: empty message")
	}
	return msg, nil
}

const routinePrompt = `Create a realistic, actionable daily routine for this user:
Name: %s
Age: %d
Goal: %s

Respond with JSON only, in the shape:
{"routine":[{"task":"...","description":"...","category":"...","suggestedTime":"..."}]}

Each category must be one of: learning, sport, work, leisure, personal.
Each suggestedTime is 12-hour format, e.g. "9:00 AM". Produce 5 to 8 tasks.`

// Routine generates a fresh routine task batch.
func (c *Client) Routine(ctx context.Context, user engine.Profile) ([]engine.TaskSuggestion, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You design personalized daily routines and always answer with strict JSON.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(routinePrompt, user.Name, user.Age, user.Goal),
			},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("routine request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("routine request: empty response")
	}
	return decodeRoutine(resp.Choices[0].Message.Content)
}

type routinePayload struct {
	Routine []engine.TaskSuggestion `json:"routine"`
}

// decodeRoutine parses the model output, tolerating a markdown code fence
// around the JSON, and rejects empty or nameless routines.
func decodeRoutine(raw string) ([]engine.TaskSuggestion, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(strings.TrimSpace(raw), "```")
		raw = strings.TrimSpace(raw)
	}

	var payload routinePayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("routine parse: %w", err)
	}
	if len(payload.Routine) == 0 {
		return nil, errors.New("routine parse: no tasks in response")
	}
	for i, t := range payload.Routine {
		if strings.TrimSpace(t.Task) == "" {
			return nil, fmt.Errorf("routine parse: task %d has no name", i)
		}
	}
	return payload.Routine, nil
}
