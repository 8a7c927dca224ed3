package save

// Document is any value persisted under a save id.
// Touch stamps creation and update times; Reset restores defaults.
type Document interface {
	Touch(nowMs int64)
	Reset()
}

// Record is the persisted state of one item or recipe.
// Times are milliseconds since the Unix epoch; zero means unset.
type Record struct {
	Unlocked     bool  `json:"unlocked"`
	TimeUnlocked int64 `json:"timeUnlocked"`
	HintGiven    bool  `json:"hintGiven"`
	TimeCreated  int64 `json:"timeCreated"`
	TimeUpdated  int64 `json:"timeUpdated"`
}

// Touch implements Document
func (r *Record) Touch(nowMs int64) {
	if r.TimeCreated == 0 {
		r.TimeCreated = nowMs
	}
	r.TimeUpdated = nowMs
}

// Reset implements Document. The creation time survives a reset.
func (r *Record) Reset() {
	*r = Record{TimeCreated: r.TimeCreated}
}
