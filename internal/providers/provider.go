package providers

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

type SourceName string

const (
	SourceOpenAI SourceName = "OPENAI"
	SourceClaude SourceName = "CLAUDE"
	SourceGemini SourceName = "GEMINI"
)

// Client is a text-completion backend. Complete returns the model's raw
// text; schema validation is the caller's job.
type Client interface {
	Name() SourceName
	Complete(ctx context.Context, prompt string) (string, error)
}

// Options are shared knobs for the HTTP-backed clients.
type Options struct {
	Key, Model string
	RPS, Burst int
	DryRun     bool
}

func newLimiter(rps, burst int) *rate.Limiter {
	if rps <= 0 {
		rps = 2
	}
	if burst <= 0 {
		burst = 2
	}
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 90 * time.Second}
}

// dryRunPayload is a schema-valid quiz the clients return when DryRun is
// set, so the pipeline can run end to end without burning API quota.
const dryRunPayload = `{"questions":[` +
	`{"prompt":"What is the capital of France?","options":["Paris","Lyon","Marseille","Nice"],"answer":0},` +
	`{"prompt":"Which planet is known as the Red Planet?","options":["Venus","Mars","Jupiter","Saturn"],"answer":1},` +
	`{"prompt":"What gas do plants absorb from the atmosphere?","options":["Oxygen","Nitrogen","Carbon dioxide","Helium"],"answer":2},` +
	`{"prompt":"Who wrote Romeo and Juliet?","options":["Dickens","Austen","Tolstoy","Shakespeare"],"answer":3},` +
	`{"prompt":"What is 7 multiplied by 8?","options":["56","48","64","54"],"answer":0}` +
	`]}`
