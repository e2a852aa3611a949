package models

import "gopkg.in/yaml.v3"

// SubTopic describes one slot under a profile topic. Description guides fact
// extraction; UpdateDescription guides the merge planner when the slot
// already holds a memo.
type SubTopic struct {
	Name              string `yaml:"name" json:"name"`
	Description       string `yaml:"description,omitempty" json:"description,omitempty"`
	UpdateDescription string `yaml:"update_description,omitempty" json:"update_description,omitempty"`
}

// UnmarshalYAML accepts both the shorthand scalar form ("nickname") and the
// full mapping form ({name: nickname, description: ...}).
func (s *SubTopic) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&s.Name)
	}
	type raw SubTopic
	var r raw
	if err := node.Decode(&r); err != nil {
		return err
	}
	*s = SubTopic(r)
	return nil
}

// UserProfileTopic is one topic of the extraction taxonomy with its slots.
type UserProfileTopic struct {
	Topic       string     `yaml:"topic" json:"topic"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	SubTopics   []SubTopic `yaml:"sub_topics" json:"sub_topics"`
}

// ProfileConfig is a per-call override of the globally configured taxonomy
// and merge strictness. A nil ProfileConfig means "use the global settings".
type ProfileConfig struct {
	// Language overrides prompt and taxonomy localization for this call.
	Language string `yaml:"language,omitempty" json:"language,omitempty"`

	// AdditionalUserProfiles extends the built-in taxonomy.
	AdditionalUserProfiles []UserProfileTopic `yaml:"additional_user_profiles,omitempty" json:"additional_user_profiles,omitempty"`

	// OverwriteUserProfiles replaces the built-in taxonomy entirely.
	// Takes precedence over AdditionalUserProfiles.
	OverwriteUserProfiles []UserProfileTopic `yaml:"overwrite_user_profiles,omitempty" json:"overwrite_user_profiles,omitempty"`

	// ProfileStrictMode and ProfileValidateMode override the global flags
	// when non-nil.
	ProfileStrictMode   *bool `yaml:"profile_strict_mode,omitempty" json:"profile_strict_mode,omitempty"`
	ProfileValidateMode *bool `yaml:"profile_validate_mode,omitempty" json:"profile_validate_mode,omitempty"`

	// EventThemeRequirement is an optional instruction appended to the
	// event summary prompt.
	EventThemeRequirement string `yaml:"event_theme_requirement,omitempty" json:"event_theme_requirement,omitempty"`
}
