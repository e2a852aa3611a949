package extraction

import (
	"context"
	"fmt"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// applyPlan executes the merge plan against the profile store. Deletes run
// first so a slot freed by a contradiction can be re-added in the same batch,
// then updates, then adds. Each storage call is retried once on transient
// failure; a persistent failure aborts with whatever already applied left in
// place — the planner re-reads state on the next flush, so a repeat pass is
// safe.
func (p *Pipeline) applyPlan(ctx context.Context, userID string, plan *models.MergeAddResult) (*models.MergePlanAudit, error) {
	audit := &models.MergePlanAudit{}

	if len(plan.Delete) > 0 {
		_, err := retryOnce(ctx, func() (int, error) {
			return p.profiles.DeleteProfiles(ctx, userID, plan.Delete)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to apply profile deletes: %w", err)
		}
		audit.DeleteIDs = plan.Delete
	}

	if len(plan.Update) > 0 {
		applied, err := retryOnce(ctx, func() ([]string, error) {
			return p.profiles.UpdateProfiles(ctx, userID, plan.Update)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to apply profile updates: %w", err)
		}
		audit.UpdateIDs = applied
	}

	if len(plan.Add) > 0 {
		ids, err := retryOnce(ctx, func() ([]string, error) {
			return p.profiles.AddProfiles(ctx, userID, plan.Add)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to apply profile adds: %w", err)
		}
		audit.AddIDs = ids
	}

	p.logger.Info("Applied merge plan",
		"user_id", userID,
		"adds", len(audit.AddIDs),
		"updates", len(audit.UpdateIDs),
		"deletes", len(audit.DeleteIDs))

	return audit, nil
}
