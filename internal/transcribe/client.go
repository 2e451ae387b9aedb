// Package transcribe sends an audio file to a Whisper-compatible HTTP API and
// returns the transcript text.
package transcribe

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	// DefaultBaseURL targets the OpenAI-hosted Whisper endpoint.
	DefaultBaseURL = "https://api.openai.com"
	// DefaultModel is used when config names no model.
	DefaultModel = "whisper-1"

	transcriptionsPath = "/v1/audio/transcriptions"
)

// Transcriber turns an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, language string) (string, error)
}

// Client is a Transcriber backed by a Whisper-compatible REST API.
type Client struct {
	http  *resty.Client
	model string
}

// NewClient creates a Client. Empty baseURL and model fall back to the
// defaults; apiKey may be empty for unauthenticated self-hosted endpoints.
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Minute)
	if apiKey != "" {
		c.SetAuthToken(apiKey)
	}
	return &Client{http: c, model: model}
}

// Transcribe uploads the audio file with an optional ISO-639-1 language hint
// and returns the transcript.
func (c *Client) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	form := map[string]string{
		"model":           c.model,
		"response_format": "json",
	}
	if language != "" {
		form["language"] = language
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFile("file", audioPath).
		SetFormData(form).
		Post(transcriptionsPath)
	if err != nil {
		return "", fmt.Errorf("transcription request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("transcription API status %d: %s", resp.StatusCode(), resp.String())
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("parse transcription response: %w", err)
	}
	return result.Text, nil
}
