package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/quizforge/quizforge/internal/telemetry"
)

type Anthropic struct {
	opts    Options
	client  *http.Client
	limiter *rate.Limiter
}

func NewAnthropic(opts Options) *Anthropic {
	return &Anthropic{opts: opts, client: newHTTPClient(), limiter: newLimiter(opts.RPS, opts.Burst)}
}

func (c *Anthropic) Name() SourceName { return SourceClaude }

func (c *Anthropic) Complete(ctx context.Context, prompt string) (string, error) {
	log := telemetry.L().With().Str("provider", string(c.Name())).Logger()

	if c.opts.DryRun {
		log.Info().Msg("anthropic_dry_run_enabled")
		return dryRunPayload, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	body := map[string]any{
		"model":      c.opts.Model,
		"max_tokens": 1500,
		"messages": []map[string]any{
			{"role": "user", "content": prompt},
		},
	}
	b, _ := json.Marshal(body)
	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.anthropic.com/v1/messages", bytes.NewReader(b))
	req.Header.Set("x-api-key", c.opts.Key)
	req.Header.Set("anthropic-version", "2023-06-01")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("anthropic_request_failed")
		return "", err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Str("status", resp.Status).RawJSON("body", raw).Msg("anthropic_http_error")
		return "", errors.New("anthropic http " + resp.Status)
	}

	var out struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	_ = json.Unmarshal(raw, &out)
	if len(out.Content) == 0 {
		return "", errors.New("anthropic empty content")
	}
	return out.Content[0].Text, nil
}
