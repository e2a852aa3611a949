package extraction

import (
	"context"
	"fmt"
	"strings"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// mergeResponse is the wire shape of one merge decision.
type mergeResponse struct {
	Action string `json:"action"`
	Memo   string `json:"memo"`
}

// confirmResponse is the wire shape of the deletion confirmation.
type confirmResponse struct {
	Confirm bool   `json:"confirm"`
	Reason  string `json:"reason,omitempty"`
}

// slotState tracks where the current content of one taxonomy slot lives while
// a batch is being planned: a pending add, a pending rewrite of an existing
// row, or an untouched existing row. Later candidates for the same slot merge
// into this in-memory state, so storage sees at most one mutation per slot.
type slotState struct {
	content  string
	rowID    string // backing row id, empty for in-batch adds
	addIdx   int    // index into plan.Add, -1 when the slot is not a pending add
	updIdx   int    // index into plan.Update, -1 when no rewrite is pending
	deltaIdx int    // index into plan.UpdateDelta owned by this slot, -1 when none
}

// merger holds the in-flight merge plan for one batch.
type merger struct {
	p        *Pipeline
	ps       promptSet
	plan     *models.MergeAddResult
	slots    map[string]*slotState
	index    map[string]models.ProfileEntry
	subs     map[string]models.SubTopic
	validate bool
}

// planMerge loads the user's profile and decides, per extracted fact, whether
// it becomes an add, folds into an existing row, deletes a contradicted row,
// or is dropped. Duplicate slot rows found while loading are repaired by
// deleting all but the newest.
func (p *Pipeline) planMerge(ctx context.Context, userID string, facts []models.FactCandidate, topics []models.UserProfileTopic, pc *models.ProfileConfig) (*models.MergeAddResult, error) {
	existing, err := retryOnce(ctx, func() ([]models.ProfileEntry, error) {
		return p.profiles.ListProfiles(ctx, userID, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load existing profiles: %w", err)
	}

	m := &merger{
		p:        p,
		ps:       promptsFor(p.cfg.EffectiveLanguage(pc)),
		plan:     &models.MergeAddResult{Before: existing},
		slots:    make(map[string]*slotState),
		index:    make(map[string]models.ProfileEntry, len(existing)),
		subs:     subTopicIndex(topics),
		validate: p.cfg.ValidateMode(pc),
	}

	// ListProfiles orders by updated_at descending, so the first row seen per
	// slot is the newest; older duplicates are queued for deletion.
	for _, e := range existing {
		key := e.Attributes.SlotKey()
		if _, dup := m.index[key]; dup {
			p.logger.Warn("Repairing duplicate profile slot",
				"user_id", userID, "slot", key, "profile_id", e.ID)
			m.plan.Delete = append(m.plan.Delete, e.ID)
			continue
		}
		m.index[key] = e
	}

	for _, fact := range facts {
		if err := m.mergeFact(ctx, fact); err != nil {
			return nil, err
		}
	}

	return m.plan, nil
}

// mergeFact folds one candidate into the plan.
func (m *merger) mergeFact(ctx context.Context, fact models.FactCandidate) error {
	attrs := fact.Attributes()
	key := attrs.SlotKey()
	memo := blob.TruncateTokens(fact.Memo, m.p.cfg.MaxPreProfileTokenSize)

	st, pending := m.slots[key]
	if !pending {
		row, exists := m.index[key]
		if !exists {
			m.plan.Add = append(m.plan.Add, models.AddProfile{Content: memo, Attributes: attrs})
			m.slots[key] = &slotState{content: memo, addIdx: len(m.plan.Add) - 1, updIdx: -1, deltaIdx: -1}
			return nil
		}
		st = &slotState{content: row.Content, rowID: row.ID, addIdx: -1, updIdx: -1, deltaIdx: -1}
		m.slots[key] = st
	}

	dec, err := m.decide(ctx, key, st.content, memo)
	if err != nil {
		return err
	}

	switch dec.Action {
	case models.MergeActionKeep:
		return nil
	case models.MergeActionDelete:
		return m.resolveContradiction(ctx, st, key, attrs, memo, dec)
	case models.MergeActionAppend, models.MergeActionReplace:
		m.applyDecision(st, attrs, memo, dec)
		return nil
	default:
		m.p.logger.Warn("Unknown merge action, keeping existing memo",
			"slot", key, "action", dec.Action)
		return nil
	}
}

// decide asks the model how the new observation changes the slot's current
// content.
func (m *merger) decide(ctx context.Context, key, oldMemo, newMemo string) (mergeResponse, error) {
	instruction := m.subs[key].UpdateDescription

	var out mergeResponse
	err := m.p.completeJSON(ctx, llm.CompletionRequest{
		System:    m.ps.mergeSystem,
		Prompt:    fmt.Sprintf(m.ps.mergeUser, key, oldMemo, newMemo, formatSlotInstruction(m.ps, instruction)),
		MaxTokens: mergeMaxTokens,
	}, &out)
	if err != nil {
		return out, fmt.Errorf("failed to merge slot %s: %w", key, err)
	}
	out.Action = strings.ToLower(strings.TrimSpace(out.Action))
	out.Memo = strings.TrimSpace(out.Memo)
	return out, nil
}

// applyDecision rewrites the slot's pending state with the merged memo. The
// delta entry records the observation that caused the change, not the merged
// row, so event gists describe what changed.
func (m *merger) applyDecision(st *slotState, attrs models.ProfileAttributes, memo string, dec mergeResponse) {
	merged := dec.Memo
	if merged == "" {
		// The model picked an action but returned no memo; fall back to a
		// mechanical merge so the observation is not lost.
		if dec.Action == models.MergeActionAppend {
			merged = st.content + "; " + memo
		} else {
			merged = memo
		}
	}
	merged = blob.TruncateTokens(merged, m.p.cfg.MaxProfileTokenSize)
	st.content = merged

	switch {
	case st.addIdx >= 0:
		m.plan.Add[st.addIdx].Content = merged
	case st.updIdx >= 0:
		m.plan.Update[st.updIdx].Content = merged
		m.plan.UpdateDelta[st.deltaIdx].Content += "; " + memo
	default:
		m.plan.Update = append(m.plan.Update, models.UpdateProfile{ProfileID: st.rowID, Content: merged})
		st.updIdx = len(m.plan.Update) - 1
		m.plan.UpdateDelta = append(m.plan.UpdateDelta, models.AddProfile{Content: memo, Attributes: attrs})
		st.deltaIdx = len(m.plan.UpdateDelta) - 1
	}
}

// resolveContradiction handles a delete signal from the model. Deletions
// reach storage only when validate mode is on and the confirmation call
// agrees; everything else downgrades to a replace (when the model produced a
// replacement memo) or leaves the slot untouched.
func (m *merger) resolveContradiction(ctx context.Context, st *slotState, key string, attrs models.ProfileAttributes, memo string, dec mergeResponse) error {
	// Contradicted content that only exists in this batch is retracted in
	// memory; storage never sees it.
	if st.rowID == "" {
		m.removePendingAdd(st.addIdx)
		delete(m.slots, key)
		return nil
	}

	if m.validate {
		confirmed, err := m.confirmDeletion(ctx, st.content, memo)
		if err != nil {
			return err
		}
		if confirmed {
			if st.updIdx >= 0 {
				m.removePendingUpdate(st.updIdx, st.deltaIdx)
			}
			m.plan.Delete = append(m.plan.Delete, st.rowID)
			m.plan.UpdateDelta = append(m.plan.UpdateDelta, models.AddProfile{Content: memo, Attributes: attrs})
			// Free the slot so a later candidate becomes a fresh add.
			delete(m.slots, key)
			delete(m.index, key)
			return nil
		}
	}

	if dec.Memo != "" {
		m.applyDecision(st, attrs, memo, mergeResponse{Action: models.MergeActionReplace, Memo: dec.Memo})
	}
	return nil
}

// confirmDeletion is the validate-mode second opinion before a row is
// deleted, routed to the thinking model when one is configured.
func (m *merger) confirmDeletion(ctx context.Context, oldMemo, statement string) (bool, error) {
	var out confirmResponse
	err := m.p.completeJSON(ctx, llm.CompletionRequest{
		System:    m.ps.confirmSystem,
		Prompt:    fmt.Sprintf(m.ps.confirmUser, oldMemo, statement),
		Model:     m.p.cfg.ThinkingLLMModel,
		MaxTokens: confirmMaxTokens,
	}, &out)
	if err != nil {
		return false, fmt.Errorf("failed to confirm deletion: %w", err)
	}
	return out.Confirm, nil
}

// removePendingAdd retracts an in-batch add and re-indexes the remaining
// pending adds.
func (m *merger) removePendingAdd(idx int) {
	m.plan.Add = append(m.plan.Add[:idx], m.plan.Add[idx+1:]...)
	for _, s := range m.slots {
		if s.addIdx > idx {
			s.addIdx--
		}
	}
}

// removePendingUpdate retracts an in-batch rewrite together with its delta
// entry and re-indexes the remaining pending updates.
func (m *merger) removePendingUpdate(updIdx, deltaIdx int) {
	m.plan.Update = append(m.plan.Update[:updIdx], m.plan.Update[updIdx+1:]...)
	for _, s := range m.slots {
		if s.updIdx > updIdx {
			s.updIdx--
		}
	}
	if deltaIdx < 0 {
		return
	}
	m.plan.UpdateDelta = append(m.plan.UpdateDelta[:deltaIdx], m.plan.UpdateDelta[deltaIdx+1:]...)
	for _, s := range m.slots {
		if s.deltaIdx > deltaIdx {
			s.deltaIdx--
		}
	}
}
