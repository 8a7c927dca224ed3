package domain

// Keyword tags an item definition. Hint and Depleted are also applied at runtime.
type Keyword string

const (
	KeywordBasic    Keyword = "Basic"
	KeywordHint     Keyword = "Hint"
	KeywordDepleted Keyword = "Depleted"
)

// ParseKeyword returns the keyword for s and whether it is known
func ParseKeyword(s string) (Keyword, bool) {
	switch Keyword(s) {
	case KeywordBasic, KeywordHint, KeywordDepleted:
		return Keyword(s), true
	default:
		return "", false
	}
}

// ItemDefinition is the immutable catalog entry for a craft item
type ItemDefinition struct {
	ID          string    `json:"id" yaml:"id" validate:"required,max=100"`
	DisplayName string    `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Blurb       string    `json:"blurb,omitempty" yaml:"blurb,omitempty"`
	Sprite      string    `json:"sprite,omitempty" yaml:"sprite,omitempty"`
	Keywords    []Keyword `json:"keywords,omitempty" yaml:"keywords,omitempty" validate:"dive,oneof=Basic Hint Depleted"`
}

// HasKeyword reports whether the definition carries k as a built-in keyword
func (d ItemDefinition) HasKeyword(k Keyword) bool {
	for _, kw := range d.Keywords {
		if kw == k {
			return true
		}
	}
	return false
}

// GameTip is a short piece of help text shown by the host
type GameTip struct {
	ID      string `json:"id" yaml:"id" validate:"required"`
	Title   string `json:"title" yaml:"title" validate:"required"`
	Tip     string `json:"tip" yaml:"tip" validate:"required"`
	Default bool   `json:"default,omitempty" yaml:"default,omitempty"`
}
