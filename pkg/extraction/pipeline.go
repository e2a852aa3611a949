package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// Output caps per pipeline stage. Fact extraction gets the most room since it
// returns one entry per durable fact in the batch.
const (
	factMaxTokens    = 2048
	mergeMaxTokens   = 512
	confirmMaxTokens = 256
	eventMaxTokens   = 1024
)

// Pipeline turns one flushed batch of blobs into persisted profile mutations
// and a best-effort audit event. Stateless across calls; safe for concurrent
// use.
type Pipeline struct {
	cfg      *config.Config
	llm      llm.Service
	profiles *services.ProfileService
	events   *services.EventService
	loc      *time.Location
	logger   *slog.Logger
}

// NewPipeline wires the extraction stages to their collaborators.
func NewPipeline(cfg *config.Config, llmSvc llm.Service, profiles *services.ProfileService, events *services.EventService) *Pipeline {
	logger := slog.With("component", "extraction")

	loc := time.UTC
	if cfg.UseTimezone != "" {
		parsed, err := time.LoadLocation(cfg.UseTimezone)
		if err != nil {
			logger.Warn("Unknown use_timezone, rendering prompt timestamps in UTC",
				"use_timezone", cfg.UseTimezone, "error", err)
		} else {
			loc = parsed
		}
	}

	return &Pipeline{
		cfg:      cfg,
		llm:      llmSvc,
		profiles: profiles,
		events:   events,
		loc:      loc,
		logger:   logger,
	}
}

// Extract runs the full pipeline over an ordered batch. Batches above the
// per-batch token ceiling are split on blob boundaries and processed split by
// split, with results merged. An empty batch short-circuits to an empty
// result with a nil event id.
func (p *Pipeline) Extract(ctx context.Context, userID string, blobs []*blob.Blob, pc *models.ProfileConfig) (*models.ExtractionResult, error) {
	result := emptyResult()
	if len(blobs) == 0 {
		return result, nil
	}

	splits := splitBatches(blobs, p.cfg.MaxChatBlobBufferProcessTokenSize)
	if len(splits) > 1 {
		p.logger.Info("Batch exceeds process token ceiling, splitting",
			"user_id", userID, "blobs", len(blobs), "splits", len(splits))
	}

	for i, split := range splits {
		sub, err := p.extractOne(ctx, userID, split, pc)
		if err != nil {
			return nil, fmt.Errorf("failed to extract split %d of %d: %w", i+1, len(splits), err)
		}
		result.Merge(sub)
	}
	return result, nil
}

// extractOne runs stages for a single split: compose, fact extraction, merge
// planning, apply, and best-effort event synthesis.
func (p *Pipeline) extractOne(ctx context.Context, userID string, blobs []*blob.Blob, pc *models.ProfileConfig) (*models.ExtractionResult, error) {
	conversation := renderConversation(blobs, p.loc)
	topics := p.cfg.ProfileTopics(pc)

	facts, err := p.extractFacts(ctx, conversation, topics, pc)
	if err != nil {
		return nil, err
	}

	plan, err := p.planMerge(ctx, userID, facts, topics, pc)
	if err != nil {
		return nil, err
	}
	if plan.Empty() {
		p.logger.Info("Batch produced no profile mutations",
			"user_id", userID, "blobs", len(blobs), "facts", len(facts))
		return emptyResult(), nil
	}

	audit, err := p.applyPlan(ctx, userID, plan)
	if err != nil {
		return nil, err
	}

	eventID := p.synthesizeEvent(ctx, userID, conversation, plan, audit, pc)

	return &models.ExtractionResult{
		AddIDs:    orEmpty(audit.AddIDs),
		UpdateIDs: orEmpty(audit.UpdateIDs),
		DeleteIDs: orEmpty(audit.DeleteIDs),
		EventID:   eventID,
	}, nil
}

// completeJSON calls the gateway and repeats the call a single time when the
// failure is transient. Parse failures are not retried past the gateway's own
// reformat attempt.
func (p *Pipeline) completeJSON(ctx context.Context, req llm.CompletionRequest, out any) error {
	err := p.llm.CompleteJSON(ctx, req, out)
	if err != nil && memerr.IsRetryable(err) && ctx.Err() == nil {
		p.logger.Warn("Transient completion failure, retrying once", "model", req.Model, "error", err)
		err = p.llm.CompleteJSON(ctx, req, out)
	}
	return err
}

// retryOnce runs fn and repeats it a single time when the failure is
// transient and the context is still live.
func retryOnce[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil && memerr.IsRetryable(err) && ctx.Err() == nil {
		return fn()
	}
	return v, err
}

func emptyResult() *models.ExtractionResult {
	return &models.ExtractionResult{
		AddIDs:    []string{},
		UpdateIDs: []string{},
		DeleteIDs: []string{},
	}
}

func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
