package models

// ContextOptions tune one retrieval/assembly call. The zero value is not
// useful; start from DefaultContextOptions.
type ContextOptions struct {
	// MaxTokenSize bounds the rendered context. Zero yields the empty string.
	MaxTokenSize int `json:"max_token_size"`
	// PreferTopics reorders matching topics to the front, stable within each
	// group.
	PreferTopics []string `json:"prefer_topics,omitempty"`
	// OnlyTopics whitelists topics when non-empty.
	OnlyTopics []string `json:"only_topics,omitempty"`
	// TopicLimits caps the number of sub-topics kept per topic.
	TopicLimits map[string]int `json:"topic_limits,omitempty"`
	// MaxSubtopicSize caps sub-topics per topic globally; zero means no cap.
	MaxSubtopicSize int `json:"max_subtopic_size,omitempty"`
	// ProfileEventRatio is the hard fraction of MaxTokenSize reserved for
	// profiles; budget the profiles leave unused is donated to events.
	ProfileEventRatio float64 `json:"profile_event_ratio"`
	// TimeRangeInDays windows event retrieval.
	TimeRangeInDays int `json:"time_range_in_days"`
	// EventSimilarityThreshold filters vector search hits.
	EventSimilarityThreshold float64 `json:"event_similarity_threshold"`
	// MaxPreviousChats is how many tail messages feed the profile filter.
	MaxPreviousChats int `json:"max_previous_chats"`
	// FullProfileAndOnlySearchEvent skips the LLM profile filter and keeps
	// the full candidate set.
	FullProfileAndOnlySearchEvent bool `json:"full_profile_and_only_search_event"`
	// FillWindowWithEvents appends older gists into residual budget.
	FillWindowWithEvents bool `json:"fill_window_with_events"`
	// CustomizeContextPrompt replaces the advisory sentence under "# Memory".
	CustomizeContextPrompt string `json:"customize_context_prompt,omitempty"`
}

// DefaultContextOptions returns the assembly defaults.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		MaxTokenSize:             1000,
		ProfileEventRatio:        0.6,
		TimeRangeInDays:          180,
		EventSimilarityThreshold: 0.2,
		MaxPreviousChats:         4,
	}
}
