package entity

import (
	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/save"
)

// Item is the runtime state of one craft item
type Item struct {
	def     domain.ItemDefinition
	record  save.Record
	runtime map[domain.Keyword]bool
	saveID  string
}

func newItem(def domain.ItemDefinition) *Item {
	return &Item{
		def:     def,
		runtime: make(map[domain.Keyword]bool),
		saveID:  domain.SaveID(domain.KindCraftItem, def.ID),
	}
}

// ID returns the catalog id
func (i *Item) ID() string { return i.def.ID }

// Definition returns the immutable catalog entry
func (i *Item) Definition() domain.ItemDefinition { return i.def }

// SaveID returns the id the item is persisted under
func (i *Item) SaveID() string { return i.saveID }

// Record returns a copy of the persisted state
func (i *Item) Record() save.Record { return i.record }

// Unlocked reports whether the item has been discovered
func (i *Item) Unlocked() bool { return i.record.Unlocked }

// TimeUnlocked returns the unlock time in milliseconds, zero while locked
func (i *Item) TimeUnlocked() int64 { return i.record.TimeUnlocked }

// HintGiven reports whether a hint is active for the item
func (i *Item) HintGiven() bool { return i.record.HintGiven }

// HasKeyword reports whether k is a built-in keyword or currently applied at runtime
func (i *Item) HasKeyword(k domain.Keyword) bool {
	return i.runtime[k] || i.def.HasKeyword(k)
}

// Keywords returns built-in keywords followed by runtime keywords, without duplicates
func (i *Item) Keywords() []domain.Keyword {
	keywords := make([]domain.Keyword, 0, len(i.def.Keywords)+len(i.runtime))
	seen := make(map[domain.Keyword]bool, cap(keywords))
	for _, k := range i.def.Keywords {
		if !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	for _, k := range []domain.Keyword{domain.KeywordHint, domain.KeywordDepleted} {
		if i.runtime[k] && !seen[k] {
			seen[k] = true
			keywords = append(keywords, k)
		}
	}
	return keywords
}

func (i *Item) setRuntime(k domain.Keyword, on bool) {
	if on {
		i.runtime[k] = true
	} else {
		delete(i.runtime, k)
	}
}
