package manifest

// Quest is the in-memory form of a quest manifest.
type Quest struct {
	Title    string   `toml:"title" json:"title"`
	Author   string   `toml:"author" json:"author"`
	Repo     string   `toml:"repo" json:"repo"`
	Stages   []Stage  `toml:"stages" json:"stages"`
	ReadOnly []string `toml:"read-only,omitempty" json:"read-only,omitempty"`

	// Final is schema-free. It holds whatever the TOML decoder produced:
	// map[string]any, []any, string, int64, float64, bool or a date/time value.
	Final any `toml:"final,omitempty" json:"final,omitempty"`
}

// Stage is one ordered step of a quest.
type Stage struct {
	Label       string `toml:"label" json:"label"`
	Description string `toml:"description" json:"description"`

	// Extra holds any other keys found in the stage table. They are kept
	// as decoded and never validated.
	Extra map[string]any `toml:"-" json:"-"`
}

// Stage table keys with a dedicated field.
const (
	keyLabel       = "label"
	keyDescription = "description"
	keyStages      = "stages"
)
