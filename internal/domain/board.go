package domain

import "fmt"

// Position is a point on the play surface
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Handle is an opaque reference to a live visual instance owned by the host.
// The zero value means no instance.
type Handle string

// RecycleState tracks undo eligibility after a mass clear
type RecycleState string

const (
	RecycleStateClean RecycleState = "Clean"
	RecycleStateUndo  RecycleState = "Undo"
)

// BoardElement is one item instance placed on the board
type BoardElement struct {
	ItemID   string   `json:"id"`
	Position Position `json:"position"`
	Handle   Handle   `json:"-"`
}

// ElementView is a board element as seen by a client, including the live handle
type ElementView struct {
	ItemID   string   `json:"id"`
	Position Position `json:"position"`
	Handle   Handle   `json:"handle"`
}

// ElementViews converts tracked elements to their client view
func ElementViews(elements []BoardElement) []ElementView {
	out := make([]ElementView, len(elements))
	for i, el := range elements {
		out[i] = ElementView{ItemID: el.ItemID, Position: el.Position, Handle: el.Handle}
	}
	return out
}
