package retrieval

import (
	"context"
	"log/slog"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
)

// Assembler composes memory context strings from the profile and event
// stores. It only reads; nothing here mutates storage.
type Assembler struct {
	cfg      *config.Config
	llm      llm.Service
	profiles *services.ProfileService
	events   *services.EventService
	logger   *slog.Logger
}

func NewAssembler(cfg *config.Config, llmSvc llm.Service, profiles *services.ProfileService, events *services.EventService) *Assembler {
	return &Assembler{
		cfg:      cfg,
		llm:      llmSvc,
		profiles: profiles,
		events:   events,
		logger:   slog.With("component", "retrieval"),
	}
}

// RelevantProfiles returns the profile rows worth showing next to the given
// conversation tail: the candidate selection of ConversationContext plus the
// model relevance filter, without the event or rendering stages.
func (a *Assembler) RelevantProfiles(ctx context.Context, userID string, tail []blob.Message, opts models.ContextOptions) ([]models.ProfileEntry, error) {
	entries, err := a.profiles.ListProfiles(ctx, userID, 0)
	if err != nil {
		return nil, err
	}
	candidates := selectCandidates(entries, opts)
	if opts.FullProfileAndOnlySearchEvent {
		return candidates, nil
	}
	return a.filterByConversation(ctx, candidates, tail, opts), nil
}

// ConversationContext renders the memory context for a live conversation:
// profile rows, event gists, and the tail itself, bounded by
// opts.MaxTokenSize. Event and filter failures degrade to empty sections;
// only the profile read itself is fatal.
func (a *Assembler) ConversationContext(ctx context.Context, userID string, tail []blob.Message, opts models.ContextOptions) (string, error) {
	if opts.MaxTokenSize <= 0 {
		return "", nil
	}

	profileRows, err := a.RelevantProfiles(ctx, userID, tail, opts)
	if err != nil {
		return "", err
	}

	eventBudget := opts.MaxTokenSize - profileTokens(profileRows)
	gists := a.fetchGists(ctx, userID, tail, opts, eventBudget)

	rendered := renderContext(opts.CustomizeContextPrompt, profileRows, gists, tail, opts.MaxTokenSize)
	a.logger.Debug("Assembled conversation context",
		"user_id", userID,
		"profiles", len(profileRows),
		"gists", len(gists),
		"tokens", blob.CountTokens(rendered))
	return rendered, nil
}
