package board

import "github.com/osse101/craftboard/internal/domain"

// Document is the persisted form of the board
type Document struct {
	Elements     []domain.BoardElement `json:"elements"`
	RecycleState domain.RecycleState   `json:"recycleState"`
	TimeCreated  int64                 `json:"timeCreated,omitempty"`
	TimeUpdated  int64                 `json:"timeUpdated,omitempty"`
}

// Touch stamps the document before a write
func (d *Document) Touch(nowMs int64) {
	if d.TimeCreated == 0 {
		d.TimeCreated = nowMs
	}
	d.TimeUpdated = nowMs
}

// Reset empties the board
func (d *Document) Reset() {
	*d = Document{
		Elements:     []domain.BoardElement{},
		RecycleState: domain.RecycleStateClean,
	}
}
