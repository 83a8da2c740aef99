package model

// ItemID identifies a tracked habit (e.g. "GYM"). It is also the top-level
// key of the persisted tracking blob.
type ItemID string

// Category is a named group of items shown together in the sidebar.
type Category struct {
	Name  string   `yaml:"name" json:"name"`
	Items []ItemID `yaml:"items" json:"items"`
}
