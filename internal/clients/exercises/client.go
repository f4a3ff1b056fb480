// Package exercises is the client for the remote exercise catalog. It maps
// catalog entries onto the stat and category each one trains and falls back
// to a fixed preset list whenever the catalog cannot be reached.
package exercises

//go:generate mockgen -destination=mock/mock_client.go -package=exercisesmock github.com/KirkDiggler/dungeon-gains/internal/clients/exercises Client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/KirkDiggler/dungeon-gains/internal/entities"
	"github.com/KirkDiggler/dungeon-gains/internal/errors"
	"github.com/KirkDiggler/dungeon-gains/internal/pkg/clock"
)

const (
	// DefaultBaseURL is the API Ninjas exercises endpoint
	DefaultBaseURL = "https://api.api-ninjas.com/v1/exercises"

	apiKeyHeader = "X-Api-Key"
)

// Source says where a listing came from
type Source string

// Listing sources
const (
	SourceAPI     Source = "api"
	SourceCache   Source = "cache"
	SourcePresets Source = "presets"
)

// Definition describes an exercise a player can log
type Definition struct {
	ID           string                    `json:"id"`
	Name         string                    `json:"name"`
	Type         string                    `json:"type,omitempty"`
	Muscle       string                    `json:"muscle"`
	Equipment    string                    `json:"equipment,omitempty"`
	Difficulty   string                    `json:"difficulty,omitempty"`
	Instructions string                    `json:"instructions,omitempty"`
	Category     entities.ExerciseCategory `json:"category"`
	StatType     entities.Stat             `json:"statType"`
	Preset       bool                      `json:"preset"`
}

// Exercise returns a loggable exercise for this definition
func (d Definition) Exercise() entities.Exercise {
	return entities.Exercise{
		ID:       d.ID,
		Name:     d.Name,
		Category: d.Category,
		StatType: d.StatType,
		Muscle:   d.Muscle,
	}
}

// ListInput filters the catalog. Empty fields are not sent.
type ListInput struct {
	Muscle     string
	Type       string
	Difficulty string
}

// ListOutput contains the matching exercises
type ListOutput struct {
	Exercises []Definition
	Source    Source
}

// Client defines the interface for exercise catalog lookups
type Client interface {
	// ListExercises never fails for catalog problems; it returns the
	// presets instead. Only a cancelled context is an error.
	ListExercises(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Config contains configuration options for the exercise client
type Config struct {
	// APIKey for API Ninjas. Empty means presets only.
	APIKey string
	// BaseURL (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for listings (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// HTTPClient overrides the default client
	HTTPClient *http.Client
	// Clock (optional, defaults to the real clock)
	Clock clock.Clock
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL: %v", err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

type cacheEntry struct {
	exercises []Definition
	expires   time.Time
}

type client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	ttl     time.Duration
	clock   clock.Clock

	mu    sync.Mutex
	cache map[ListInput]cacheEntry
}

// New creates a new exercise catalog client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		http:    httpClient,
		ttl:     cfg.CacheTTL,
		clock:   cfg.Clock,
		cache:   make(map[ListInput]cacheEntry),
	}, nil
}

func (c *client) ListExercises(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		input = &ListInput{}
	}

	if c.apiKey == "" {
		return &ListOutput{Exercises: presetsFor(input.Muscle), Source: SourcePresets}, nil
	}

	if cached, ok := c.cached(*input); ok {
		return &ListOutput{Exercises: cached, Source: SourceCache}, nil
	}

	defs, err := c.fetch(ctx, *input)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WrapWithCode(ctx.Err(), errors.CodeCanceled, "exercise lookup cancelled")
		}
		slog.WarnContext(ctx, "exercise catalog unavailable, using presets",
			"muscle", input.Muscle,
			"error", err)
		return &ListOutput{Exercises: presetsFor(input.Muscle), Source: SourcePresets}, nil
	}

	c.store(*input, defs)
	return &ListOutput{Exercises: defs, Source: SourceAPI}, nil
}

func (c *client) cached(key ListInput) ([]Definition, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.cache[key]
	if !ok {
		return nil, false
	}
	if !c.clock.Now().Before(entry.expires) {
		delete(c.cache, key)
		return nil, false
	}
	return append([]Definition(nil), entry.exercises...), true
}

func (c *client) store(key ListInput, defs []Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[key] = cacheEntry{
		exercises: append([]Definition(nil), defs...),
		expires:   c.clock.Now().Add(c.ttl),
	}
}

// apiExercise is the API Ninjas response shape
type apiExercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

func (c *client) fetch(ctx context.Context, input ListInput) ([]Definition, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	if input.Muscle != "" {
		q.Set("muscle", input.Muscle)
	}
	if input.Type != "" {
		q.Set("type", input.Type)
	}
	if input.Difficulty != "" {
		q.Set("difficulty", input.Difficulty)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Unavailablef("exercise catalog returned %s", resp.Status)
	}

	var raw []apiExercise
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode exercise catalog: %w", err)
	}

	defs := make([]Definition, 0, len(raw))
	for _, e := range raw {
		if e.Name == "" {
			continue
		}
		defs = append(defs, Definition{
			ID:           Slug(e.Name),
			Name:         e.Name,
			Type:         e.Type,
			Muscle:       e.Muscle,
			Equipment:    e.Equipment,
			Difficulty:   e.Difficulty,
			Instructions: e.Instructions,
			Category:     MuscleToCategory(e.Muscle),
			StatType:     MuscleToStat(e.Muscle),
		})
	}
	return defs, nil
}
