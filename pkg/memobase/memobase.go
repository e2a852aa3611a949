// Package memobase is the embeddable entry point of the memory engine. It
// binds the stores, the LLM gateway, the extraction pipeline, and the
// retrieval assembler behind one client type so host applications deal with
// a single object instead of the wiring underneath.
//
// Writes go through ExtractMemories/FlushBuffer and run the full extraction
// pipeline; reads are side-effect free and retry transient provider failures
// a bounded number of times.
package memobase

import (
	"context"
	"log/slog"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/extraction"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/flush"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/retrieval"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// readRetries is how many extra attempts an idempotent read gets when the
// provider reports service-unavailable. Writes never retry here; the buffer
// state machine plus the watchdog own write recovery.
const readRetries = 2

// Memobase is the façade over the memory engine. Safe for concurrent use.
type Memobase struct {
	cfg       *config.Config
	llm       llm.Service
	buffers   *services.BufferService
	blobs     *services.BlobService
	profiles  *services.ProfileService
	events    *services.EventService
	manager   *flush.Manager
	assembler *retrieval.Assembler
	logger    *slog.Logger
}

// New builds a Memobase from configuration: provider adapters come from
// cfg.LLMStyle and the embedding settings, the gist index from
// cfg.SearchStore. The database client must already be connected and
// migrated.
func New(ctx context.Context, cfg *config.Config, db *database.Client) (*Memobase, error) {
	gateway, err := llm.New(cfg)
	if err != nil {
		return nil, err
	}
	index, err := search.NewGistIndex(ctx, cfg, db.Client)
	if err != nil {
		return nil, err
	}
	return NewFromParts(cfg, db, gateway, index), nil
}

// NewFromParts builds a Memobase around explicit collaborators. Tests use it
// to substitute a scripted LLM service or an in-memory gist index.
func NewFromParts(cfg *config.Config, db *database.Client, llmSvc llm.Service, index search.GistIndex) *Memobase {
	buffers := services.NewBufferService(db.Client)
	blobs := services.NewBlobService(db.Client)
	profiles := services.NewProfileService(db.Client)
	events := services.NewEventService(db.Client, index)
	pipeline := extraction.NewPipeline(cfg, llmSvc, profiles, events)

	return &Memobase{
		cfg:       cfg,
		llm:       llmSvc,
		buffers:   buffers,
		blobs:     blobs,
		profiles:  profiles,
		events:    events,
		manager:   flush.NewManager(cfg, buffers, blobs, pipeline),
		assembler: retrieval.NewAssembler(cfg, llmSvc, profiles, events),
		logger:    slog.With("component", "memobase"),
	}
}

// Manager exposes the flush orchestrator for hosts that run their own worker
// pool against the same database.
func (m *Memobase) Manager() *flush.Manager {
	return m.manager
}

// ExtractMemories inserts the blobs into the user's ingestion buffer and
// flushes every buffer whose trigger fires afterwards. Blobs of different
// types land in different buffers, so one call can flush more than one; the
// returned result is the merge. Returns (nil, nil) when no buffer was ready —
// the blobs stay buffered and a later call or a background worker picks them
// up.
//
// pc overrides the profile taxonomy for this call; nil uses the configured
// default.
func (m *Memobase) ExtractMemories(ctx context.Context, userID string, blobs []*blob.Blob, pc *models.ProfileConfig) (*models.ExtractionResult, error) {
	if len(blobs) == 0 {
		return nil, nil
	}

	// Distinct blob types in first-seen order, so flush order is stable.
	var types []blob.BlobType
	seen := make(map[blob.BlobType]bool)
	for _, b := range blobs {
		if _, err := m.buffers.Insert(ctx, userID, b); err != nil {
			return nil, err
		}
		if !seen[b.Type] {
			seen[b.Type] = true
			types = append(types, b.Type)
		}
	}

	var combined *models.ExtractionResult
	for _, bt := range types {
		result, err := m.manager.FlushIfReady(ctx, userID, bt, pc)
		if err != nil {
			return nil, err
		}
		if result == nil {
			continue
		}
		if combined == nil {
			combined = result.Extraction
		} else {
			combined.Merge(result.Extraction)
		}
	}
	return combined, nil
}

// FlushBuffer flushes everything idle in the user's buffer for one blob
// type, regardless of trigger state. Hosts call it at session end. Returns
// (nil, nil) when the buffer was empty.
func (m *Memobase) FlushBuffer(ctx context.Context, userID string, blobType blob.BlobType) (*models.ExtractionResult, error) {
	result, err := m.manager.FlushAll(ctx, userID, blobType, nil)
	if err != nil || result == nil {
		return nil, err
	}
	return result.Extraction, nil
}

// GetUserProfiles returns the user's profile slots, most recently updated
// first. A non-empty topics list narrows the result to those topics.
func (m *Memobase) GetUserProfiles(ctx context.Context, userID string, topics ...string) ([]models.ProfileEntry, error) {
	return retryRead(ctx, m.logger, "get_user_profiles", func() ([]models.ProfileEntry, error) {
		if len(topics) > 0 {
			return m.profiles.ListProfilesByTopics(ctx, userID, topics)
		}
		return m.profiles.ListProfiles(ctx, userID, 0)
	})
}

// GetEvents returns the user's memory events newest-first, limited to
// windowDays back (zero or negative disables the window) and at most limit
// rows.
func (m *Memobase) GetEvents(ctx context.Context, userID string, windowDays, limit int) ([]models.Event, error) {
	return retryRead(ctx, m.logger, "get_events", func() ([]models.Event, error) {
		return m.events.GetEvents(ctx, userID, windowDays, limit)
	})
}

// SearchEvents embeds the query and returns gists above the similarity
// threshold, best match first. Fails with a not-implemented error when event
// embedding is disabled; topk <= 0 returns nothing.
func (m *Memobase) SearchEvents(ctx context.Context, userID, query string, topk int, threshold float64, windowDays int) ([]models.GistHit, error) {
	if topk <= 0 {
		return nil, nil
	}
	return retryRead(ctx, m.logger, "search_events", func() ([]models.GistHit, error) {
		vecs, err := m.llm.Embed(ctx, llm.EmbedPhaseQuery, []string{query})
		if err != nil {
			return nil, err
		}
		return m.events.SearchGists(ctx, userID, vecs[0], topk, threshold, windowDays)
	})
}

// GetRelevantProfiles returns the profile slots the retrieval pipeline would
// include for this conversation: topic selection and budgeting first, then
// the conversation-aware LLM filter unless opts disables it. Callers should
// start from DefaultContextOptions; the zero ContextOptions selects nothing.
func (m *Memobase) GetRelevantProfiles(ctx context.Context, userID string, conversation []blob.Message, opts models.ContextOptions) ([]models.ProfileEntry, error) {
	return retryRead(ctx, m.logger, "get_relevant_profiles", func() ([]models.ProfileEntry, error) {
		return m.assembler.RelevantProfiles(ctx, userID, conversation, opts)
	})
}

// GetConversationContext assembles the token-bounded memory prompt for the
// conversation. opts.MaxTokenSize of zero yields the empty string.
func (m *Memobase) GetConversationContext(ctx context.Context, userID string, conversation []blob.Message, opts models.ContextOptions) (string, error) {
	return retryRead(ctx, m.logger, "get_conversation_context", func() (string, error) {
		return m.assembler.ConversationContext(ctx, userID, conversation, opts)
	})
}

// SearchProfiles finds the profile slots relevant to a free-text query. It
// runs GetRelevantProfiles over a synthetic one-message conversation holding
// the query, optionally narrowed to topics, truncated to maxResults.
func (m *Memobase) SearchProfiles(ctx context.Context, userID, query string, topics []string, maxResults int) ([]models.ProfileEntry, error) {
	if maxResults <= 0 {
		return nil, nil
	}

	opts := models.DefaultContextOptions()
	opts.OnlyTopics = topics
	conversation := []blob.Message{{Role: blob.RoleUser, Content: query}}

	entries, err := m.GetRelevantProfiles(ctx, userID, conversation, opts)
	if err != nil {
		return nil, err
	}
	if len(entries) > maxResults {
		entries = entries[:maxResults]
	}
	return entries, nil
}

// retryRead runs an idempotent read, retrying while the failure is a
// transient provider outage and the caller's context is still live.
func retryRead[T any](ctx context.Context, logger *slog.Logger, op string, fn func() (T, error)) (T, error) {
	result, err := fn()
	for attempt := 0; attempt < readRetries && err != nil && memerr.IsRetryable(err) && ctx.Err() == nil; attempt++ {
		logger.Warn("Read failed, retrying", "operation", op, "attempt", attempt+1, "error", err)
		result, err = fn()
	}
	return result, err
}
