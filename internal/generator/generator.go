// Package generator builds passwords and passphrases from a secure random
// source and attaches strength and entropy estimates.
package generator

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/passgen/internal/model"
	"github.com/verte-zerg/passgen/internal/strength"
	"github.com/verte-zerg/passgen/internal/wordlist"
)

// Generator produces secrets. It keeps no mutable state after construction
// and may be shared between goroutines when its Source allows it.
type Generator struct {
	src    Source
	words  []string
	scorer strength.Scorer
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the crypto/rand source.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.src = src
		}
	}
}

// WithWords replaces the built-in passphrase word list.
func WithWords(words []string) Option {
	return func(g *Generator) {
		if len(words) > 0 {
			g.words = append([]string(nil), words...)
		}
	}
}

// WithScorer sets the strength scorer.
func WithScorer(s strength.Scorer) Option {
	return func(g *Generator) {
		if s != nil {
			g.scorer = s
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New returns a Generator using crypto/rand, the built-in word list and the
// heuristic scorer unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		src:    CryptoSource(),
		words:  wordlist.Default(),
		scorer: strength.Heuristic{},
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WordCount returns the size of the passphrase word list.
func (g *Generator) WordCount() int {
	return len(g.words)
}

// Scorer returns the strength scorer in use.
func (g *Generator) Scorer() strength.Scorer {
	return g.scorer
}

// Generate validates cfg, builds a secret for its mode and scores it.
func (g *Generator) Generate(cfg model.GenerationConfig) (model.GenerationResult, error) {
	if err := cfg.Validate(); err != nil {
		return model.GenerationResult{}, err
	}

	var (
		secret string
		err    error
	)
	switch cfg.Mode {
	case model.ModePassphrase:
		secret, err = g.Passphrase(cfg)
	default:
		secret, err = g.Standard(cfg)
	}
	if err != nil {
		return model.GenerationResult{}, err
	}

	result := model.GenerationResult{
		Secret:      secret,
		Strength:    g.scorer.ScoreSecret(secret),
		EntropyBits: g.Entropy(cfg),
		Config:      cfg,
		GeneratedAt: g.now(),
	}
	g.logger.Debug("secret generated",
		"mode", cfg.Mode.String(),
		"length", cfg.Length,
		"entropy_bits", result.EntropyBits,
		"score", result.Strength.Score,
		"scorer", g.scorer.Name(),
	)
	return result, nil
}

// GenerateBatch runs n independent generations concurrently and returns the
// results in request order. The first failure cancels the rest.
func (g *Generator) GenerateBatch(ctx context.Context, cfg model.GenerationConfig, n int) ([]model.GenerationResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("batch size must be > 0, got %d", n)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	results := make([]model.GenerationResult, n)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < n; i++ {
		i := i
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := g.Generate(cfg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
