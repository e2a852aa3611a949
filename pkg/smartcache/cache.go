// Package smartcache layers a keyword-indexed profile cache over the
// façade's retrieval path. Hosts that need sub-second context assembly keep
// one Cache per active user: profile relevance is scored locally against
// cached keywords instead of a model call, event search stays live, and the
// cache refreshes itself in the background. The engine core never reads it.
package smartcache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memobase"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// Memory is the slice of the façade the cache reads through.
type Memory interface {
	GetUserProfiles(ctx context.Context, userID string, topics ...string) ([]models.ProfileEntry, error)
	SearchEvents(ctx context.Context, userID, query string, topk int, threshold float64, windowDays int) ([]models.GistHit, error)
	GetConversationContext(ctx context.Context, userID string, conversation []blob.Message, opts models.ContextOptions) (string, error)
}

var _ Memory = (*memobase.Memobase)(nil)

// Config tunes one cache instance. The zero value is not useful; New fills
// zero fields from DefaultConfig.
type Config struct {
	// RefreshInterval is how stale the profile cache may grow before a
	// background refresh is scheduled.
	RefreshInterval time.Duration
	// RefreshTimeout bounds one background refresh.
	RefreshTimeout time.Duration
	// RelevanceThreshold is the minimum keyword score a profile needs to
	// make the context.
	RelevanceThreshold float64
	// MaxProfiles caps the profile section, best matches first.
	MaxProfiles int
	// EventTopK, EventThreshold and EventWindowDays parameterize the live
	// event search.
	EventTopK       int
	EventThreshold  float64
	EventWindowDays int
	// SessionTail is how many trailing conversation messages render in the
	// session section.
	SessionTail int
	// MaxKeywords caps the keywords kept per text.
	MaxKeywords int
	// MaxContextTokens bounds the rendered context when the caller passes
	// no budget of its own.
	MaxContextTokens int
}

// DefaultConfig returns the built-in cache defaults.
func DefaultConfig() Config {
	return Config{
		RefreshInterval:    10 * time.Minute,
		RefreshTimeout:     30 * time.Second,
		RelevanceThreshold: 0.3,
		MaxProfiles:        10,
		EventTopK:          5,
		EventThreshold:     0.2,
		EventWindowDays:    30,
		SessionTail:        6,
		MaxKeywords:        10,
		MaxContextTokens:   2000,
	}
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits           int       `json:"cache_hits"`
	Misses         int       `json:"cache_misses"`
	Refreshes      int       `json:"profile_refreshes"`
	CachedProfiles int       `json:"cached_profiles"`
	LastRefresh    time.Time `json:"last_refresh"`
}

// cachedProfile is one profile slot with its precomputed matching keywords.
type cachedProfile struct {
	topic        string
	subTopic     string
	content      string
	keywords     []string
	lastAccessed time.Time
	accessCount  int
}

// Cache serves context for a single user. Safe for concurrent use.
type Cache struct {
	userID string
	mem    Memory
	cfg    Config
	logger *slog.Logger

	mu          sync.Mutex
	profiles    []*cachedProfile
	lastRefresh time.Time
	refreshing  bool
	hits        int
	misses      int
	refreshes   int

	wg sync.WaitGroup
}

// New builds a cache for one user. Zero cfg fields fall back to
// DefaultConfig, so callers override only what they need.
func New(userID string, mem Memory, cfg Config) *Cache {
	logger := slog.With("component", "smartcache", "user_id", userID)
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		logger.Warn("Failed to merge cache config, using defaults", "error", err)
		cfg = DefaultConfig()
	}
	return &Cache{
		userID: userID,
		mem:    mem,
		cfg:    cfg,
		logger: logger,
	}
}

// EnhancedContext assembles the memory prompt for the next turn: cached
// profiles scored against the message keywords, a live event search, and the
// trailing conversation. maxTokens <= 0 applies the configured default.
//
// A cold cache that cannot load hands the whole call to the engine's own
// assembler, so callers get a context either way.
func (c *Cache) EnhancedContext(ctx context.Context, message string, history []blob.Message, maxTokens int) (string, error) {
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxContextTokens
	}

	profiles, err := c.relevantProfiles(ctx, message, history)
	if err != nil {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		c.logger.Warn("Profile cache unavailable, falling back to direct retrieval", "error", err)

		opts := models.DefaultContextOptions()
		opts.MaxTokenSize = maxTokens
		conversation := append(append([]blob.Message{}, history...),
			blob.Message{Role: blob.RoleUser, Content: message})
		return c.mem.GetConversationContext(ctx, c.userID, conversation, opts)
	}

	events := c.searchEvents(ctx, message)
	summary := sessionSummary(history, c.cfg.SessionTail)
	out := renderContext(profiles, events, summary, maxTokens)

	c.mu.Lock()
	c.hits++
	stale := time.Since(c.lastRefresh) > c.cfg.RefreshInterval
	c.mu.Unlock()
	if stale {
		c.scheduleRefresh()
	}
	return out, nil
}

// Refresh rebuilds the keyword index from the current profile store. Reads
// keep serving the old snapshot until the swap.
func (c *Cache) Refresh(ctx context.Context) error {
	entries, err := c.mem.GetUserProfiles(ctx, c.userID)
	if err != nil {
		return err
	}

	now := time.Now()
	rebuilt := make([]*cachedProfile, 0, len(entries))
	for _, e := range entries {
		keywords := extractKeywords(e.Content, c.cfg.MaxKeywords)
		keywords = append(keywords,
			strings.ToLower(e.Attributes.Topic),
			strings.ToLower(e.Attributes.SubTopic))
		rebuilt = append(rebuilt, &cachedProfile{
			topic:        e.Attributes.Topic,
			subTopic:     e.Attributes.SubTopic,
			content:      e.Content,
			keywords:     dedupe(keywords),
			lastAccessed: now,
		})
	}

	c.mu.Lock()
	c.profiles = rebuilt
	c.lastRefresh = now
	c.refreshes++
	c.mu.Unlock()

	c.logger.Debug("Profile cache refreshed", "profiles", len(rebuilt))
	return nil
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:           c.hits,
		Misses:         c.misses,
		Refreshes:      c.refreshes,
		CachedProfiles: len(c.profiles),
		LastRefresh:    c.lastRefresh,
	}
}

// Close waits for any in-flight background refresh. The cache holds no
// other resources.
func (c *Cache) Close() {
	c.wg.Wait()
}

// relevantProfiles scores the cached profiles against keywords drawn from
// the message and the recent conversation, no model call involved. A cold
// cache loads synchronously first.
func (c *Cache) relevantProfiles(ctx context.Context, message string, history []blob.Message) ([]*cachedProfile, error) {
	c.mu.Lock()
	loaded := !c.lastRefresh.IsZero()
	c.mu.Unlock()
	if !loaded {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
	}

	keywords := extractKeywords(message, c.cfg.MaxKeywords)
	if n := len(history); n > 0 {
		tail := history
		if n > 4 {
			tail = history[n-4:]
		}
		for _, m := range tail {
			keywords = append(keywords, extractKeywords(m.Content, c.cfg.MaxKeywords)...)
		}
		keywords = dedupe(keywords)
	}

	type scored struct {
		profile *cachedProfile
		score   float64
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	matches := make([]scored, 0, len(c.profiles))
	for _, p := range c.profiles {
		score := keywordRelevance(keywords, p)
		if score > c.cfg.RelevanceThreshold {
			p.lastAccessed = now
			p.accessCount++
			matches = append(matches, scored{p, score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })
	if len(matches) > c.cfg.MaxProfiles {
		matches = matches[:c.cfg.MaxProfiles]
	}

	out := make([]*cachedProfile, len(matches))
	for i, m := range matches {
		out[i] = m.profile
	}
	return out, nil
}

// searchEvents runs the live event search. Failures degrade to an empty
// events section; stale events are worse than none.
func (c *Cache) searchEvents(ctx context.Context, message string) []models.GistHit {
	hits, err := c.mem.SearchEvents(ctx, c.userID,
		message, c.cfg.EventTopK, c.cfg.EventThreshold, c.cfg.EventWindowDays)
	if err != nil {
		c.logger.Warn("Event search failed, omitting events section", "error", err)
		return nil
	}
	return hits
}

// scheduleRefresh starts one background refresh unless one is already
// running.
func (c *Cache) scheduleRefresh() {
	c.mu.Lock()
	if c.refreshing {
		c.mu.Unlock()
		return
	}
	c.refreshing = true
	c.mu.Unlock()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), c.cfg.RefreshTimeout)
		defer cancel()
		if err := c.Refresh(ctx); err != nil {
			c.logger.Warn("Background profile refresh failed", "error", err)
		}
		c.mu.Lock()
		c.refreshing = false
		c.mu.Unlock()
	}()
}

const cacheAdvisory = "Unless the user has relevant queries, do not actively mention those memories in the conversation."

// renderContext assembles the same "# Memory" shape the core assembler
// renders, from cached parts. Long event lines are clipped; the whole string
// is token-bounded at the end.
func renderContext(profiles []*cachedProfile, events []models.GistHit, summary string, maxTokens int) string {
	var sb strings.Builder
	sb.WriteString("---\n# Memory\n")
	sb.WriteString(cacheAdvisory + "\n")

	if len(profiles) > 0 {
		sb.WriteString("## User Current Profile:\n")
		for _, p := range profiles {
			fmt.Fprintf(&sb, "- %s::%s: %s\n", p.topic, p.subTopic, p.content)
		}
	}

	if len(events) > 0 {
		sb.WriteString("## Past Events:\n")
		for _, e := range events {
			sb.WriteString(truncateRunes(e.Content, 150) + "\n")
		}
	}

	if summary != "" {
		sb.WriteString("## Current Session Context:\n")
		sb.WriteString(summary + "\n")
	}

	sb.WriteString("---")
	out := sb.String()
	if blob.CountTokens(out) > maxTokens {
		out = blob.TruncateTokens(out, maxTokens) + "\n[Context truncated due to length]"
	}
	return out
}

// sessionSummary renders the last tailSize messages, each clipped to 100
// runes.
func sessionSummary(history []blob.Message, tailSize int) string {
	if len(history) == 0 {
		return ""
	}
	if len(history) > tailSize {
		history = history[len(history)-tailSize:]
	}

	parts := make([]string, len(history))
	for i, m := range history {
		role := "Assistant"
		if m.Role == blob.RoleUser {
			role = "User"
		}
		parts[i] = fmt.Sprintf("%s: %s", role, truncateRunes(m.Content, 100))
	}
	return strings.Join(parts, "\n")
}

// truncateRunes shortens s to max runes with a trailing ellipsis.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
