package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/quizforge/quizforge/internal/telemetry"
)

type OpenAI struct {
	opts    Options
	client  *http.Client
	limiter *rate.Limiter
}

func NewOpenAI(opts Options) *OpenAI {
	return &OpenAI{opts: opts, client: newHTTPClient(), limiter: newLimiter(opts.RPS, opts.Burst)}
}

func (c *OpenAI) Name() SourceName { return SourceOpenAI }

func (c *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	log := telemetry.L().With().Str("provider", string(c.Name())).Logger()

	if c.opts.DryRun {
		log.Info().Msg("openai_dry_run_enabled")
		return dryRunPayload, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body := map[string]any{
		"model":             c.opts.Model,
		"input":             prompt,
		"temperature":       0.3,
		"max_output_tokens": 1500,
	}
	b, _ := json.Marshal(body)
	log.Debug().Int("body_len", len(b)).Msg("openai_request")

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/responses", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.opts.Key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("openai_request_failed")
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	log.Debug().Int("body_len", len(raw)).Msg("openai_response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("status", resp.Status).RawJSON("body", raw).Msg("openai_http_error")
		return "", errors.New("openai http " + resp.Status)
	}

	text := extractOpenAIText(raw)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("openai: empty text")
	}
	return text, nil
}

// get text from Responses API or fallback Chat Completions.
func extractOpenAIText(raw []byte) string {
	var r1 struct {
		OutputText string `json:"output_text"`
	}
	if json.Unmarshal(raw, &r1) == nil && strings.TrimSpace(r1.OutputText) != "" {
		return r1.OutputText
	}

	// responses API: output[].content[].text
	var r2 struct {
		Output []struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if json.Unmarshal(raw, &r2) == nil && len(r2.Output) > 0 {
		for _, c := range r2.Output[0].Content {
			if strings.TrimSpace(c.Text) != "" {
				return c.Text
			}
		}
	}

	// fallback chat completions format: choices[0].message.content
	var r3 struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if json.Unmarshal(raw, &r3) == nil && len(r3.Choices) > 0 {
		return r3.Choices[0].Message.Content
	}

	return ""
}
