package models

// FactCandidate is one extracted fact before merge planning.
type FactCandidate struct {
	Topic    string `json:"topic"`
	SubTopic string `json:"sub_topic"`
	Memo     string `json:"memo"`
}

// Attributes returns the taxonomy slot the candidate targets.
func (f FactCandidate) Attributes() ProfileAttributes {
	return ProfileAttributes{Topic: f.Topic, SubTopic: f.SubTopic}
}

// Merge actions the planner can receive from the model.
const (
	MergeActionAppend  = "append"
	MergeActionReplace = "replace"
	MergeActionKeep    = "keep"
	MergeActionDelete  = "delete"
)

// MergeAddResult is the full merge plan for one batch: what to insert, what
// to rewrite, what to remove, plus the net-new content per update
// (UpdateDelta) used for event synthesis, and the profile state the plan was
// computed against (Before).
type MergeAddResult struct {
	Add         []AddProfile    `json:"add"`
	Update      []UpdateProfile `json:"update"`
	Delete      []string        `json:"delete"`
	UpdateDelta []AddProfile    `json:"update_delta"`
	Before      []ProfileEntry  `json:"before_profiles,omitempty"`
}

// Empty reports whether the plan mutates nothing.
func (m *MergeAddResult) Empty() bool {
	return len(m.Add) == 0 && len(m.Update) == 0 && len(m.Delete) == 0
}

// ExtractionResult reports the persisted outcome of one flush batch.
// EventID is nil when event synthesis was skipped or failed (best-effort
// stage) or when the batch was empty.
type ExtractionResult struct {
	AddIDs    []string `json:"add_ids"`
	UpdateIDs []string `json:"update_ids"`
	DeleteIDs []string `json:"delete_ids"`
	EventID   *string  `json:"event_id"`
}

// Merge folds another result into r, deduplicating ids. The first non-nil
// event id wins.
func (r *ExtractionResult) Merge(other *ExtractionResult) {
	if other == nil {
		return
	}
	r.AddIDs = appendUnique(r.AddIDs, other.AddIDs)
	r.UpdateIDs = appendUnique(r.UpdateIDs, other.UpdateIDs)
	r.DeleteIDs = appendUnique(r.DeleteIDs, other.DeleteIDs)
	if r.EventID == nil {
		r.EventID = other.EventID
	}
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, id := range dst {
		seen[id] = struct{}{}
	}
	for _, id := range src {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		dst = append(dst, id)
	}
	return dst
}
