// Package health backs the readiness endpoint with concurrent
// dependency checks.
package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/quizforge/quizforge/internal/providers"
)

var probeURLs = map[providers.SourceName]string{
	providers.SourceGemini: "https://generativelanguage.googleapis.com/",
	providers.SourceOpenAI: "https://api.openai.com/",
	providers.SourceClaude: "https://api.anthropic.com/",
}

var probeClient = &http.Client{Timeout: 5 * time.Second}

// Ready pings Redis and probes the active provider's endpoint in
// parallel. Any HTTP response from the provider counts as reachable;
// the probe is unauthenticated, so status codes carry no signal.
func Ready(ctx context.Context, rdb *redis.Client, provider providers.SourceName) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return rdb.Ping(ctx).Err()
	})

	g.Go(func() error {
		url, ok := probeURLs[provider]
		if !ok {
			return errors.New("health: unknown provider " + string(provider))
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return err
		}
		resp, err := probeClient.Do(req)
		if err != nil {
			return err
		}
		resp.Body.Close()
		return nil
	})

	return g.Wait()
}
