package board

import (
	"context"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/event"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/save"
)

// Host owns the live visual instances placed on the board
type Host interface {
	SpawnInstance(itemID string, at domain.Position) domain.Handle
	RecycleInstance(handle domain.Handle)
	// Position reports where a live instance is; false once it is gone
	Position(handle domain.Handle) (domain.Position, bool)
}

// Persister is the save path used by the board
type Persister interface {
	LoadOrCreate(ctx context.Context, saveID string, doc save.Document) save.LoadOutcome
	Persist(ctx context.Context, saveID string, doc save.Document) bool
}

// State tracks the instances on the board and the single-level undo of a mass clear.
// While RecycleState is Undo the undo buffer is never empty.
type State struct {
	doc     Document
	pending []domain.BoardElement
	undo    []domain.BoardElement

	host      Host
	persister Persister
	bus       event.Bus
}

// New loads the persisted board. The loaded elements are not live until Restore runs.
func New(ctx context.Context, host Host, persister Persister, bus event.Bus) *State {
	s := &State{host: host, persister: persister, bus: bus}
	s.doc.Reset()

	outcome := persister.LoadOrCreate(ctx, domain.BoardSaveID, &s.doc)
	s.pending = s.doc.Elements
	s.doc.Elements = []domain.BoardElement{}

	// the undo buffer is not persisted, so an Undo state cannot survive a restart
	s.doc.RecycleState = domain.RecycleStateClean

	logger.FromContext(ctx).Info(LogMsgBoardLoaded, "outcome", outcome.String(), "elements", len(s.pending))
	return s
}

// Restore spawns the elements loaded by New. Elements for which usable returns
// false are dropped. It returns the number of elements placed.
func (s *State) Restore(ctx context.Context, usable func(itemID string) bool) int {
	log := logger.FromContext(ctx)
	for _, el := range s.pending {
		if !usable(el.ItemID) {
			log.Debug(LogMsgRestoreSkipped, "item_id", el.ItemID)
			continue
		}
		el.Handle = s.host.SpawnInstance(el.ItemID, el.Position)
		s.doc.Elements = append(s.doc.Elements, el)
	}
	s.pending = nil

	log.Info(LogMsgBoardRestored, "elements", len(s.doc.Elements))
	s.Save(ctx)
	return len(s.doc.Elements)
}

// Elements returns a copy of the tracked elements in placement order
func (s *State) Elements() []domain.BoardElement {
	out := make([]domain.BoardElement, len(s.doc.Elements))
	copy(out, s.doc.Elements)
	return out
}

// Element returns the tracked element for handle
func (s *State) Element(handle domain.Handle) (domain.BoardElement, bool) {
	if i := s.indexOf(handle); i >= 0 {
		return s.doc.Elements[i], true
	}
	return domain.BoardElement{}, false
}

// RecycleState returns the current undo eligibility
func (s *State) RecycleState() domain.RecycleState {
	return s.doc.RecycleState
}

// UndoBuffer returns a copy of the elements a pending Undo would restore
func (s *State) UndoBuffer() []domain.BoardElement {
	out := make([]domain.BoardElement, len(s.undo))
	copy(out, s.undo)
	return out
}

// TrackElement adds the instance to the board if it is not already tracked and
// persists the board. Placing an instance forfeits a pending undo.
func (s *State) TrackElement(ctx context.Context, itemID string, handle domain.Handle) {
	s.OnPositionChanged(ctx)

	if s.indexOf(handle) < 0 {
		pos, _ := s.host.Position(handle)
		s.doc.Elements = append(s.doc.Elements, domain.BoardElement{ItemID: itemID, Position: pos, Handle: handle})
		logger.FromContext(ctx).Debug(LogMsgElementTracked, "item_id", itemID, "handle", handle)
	}
	s.Save(ctx)
}

// UntrackElement removes the instance from the board and persists the board.
// It reports whether the handle was tracked.
func (s *State) UntrackElement(ctx context.Context, handle domain.Handle) bool {
	i := s.indexOf(handle)
	if i >= 0 {
		s.doc.Elements = append(s.doc.Elements[:i], s.doc.Elements[i+1:]...)
		logger.FromContext(ctx).Debug(LogMsgElementUntracked, "handle", handle)
	}
	s.Save(ctx)
	return i >= 0
}

// Save prunes elements whose instance is gone, refreshes positions and writes the board
func (s *State) Save(ctx context.Context) bool {
	s.refresh(ctx)
	return s.persister.Persist(ctx, domain.BoardSaveID, &s.doc)
}

// MassClear recycles every instance on the board and keeps them in the undo
// buffer. It returns the cleared elements; an empty board is left untouched.
func (s *State) MassClear(ctx context.Context) []domain.BoardElement {
	s.refresh(ctx)
	if len(s.doc.Elements) == 0 {
		return nil
	}

	s.undo = s.doc.Elements
	s.doc.Elements = []domain.BoardElement{}
	for _, el := range s.undo {
		s.host.RecycleInstance(el.Handle)
	}

	s.setState(ctx, domain.RecycleStateUndo, len(s.undo))
	logger.FromContext(ctx).Info(LogMsgMassCleared, "elements", len(s.undo))
	return s.UndoBuffer()
}

// Undo respawns every element of the last mass clear at its saved position.
// It returns the new elements, or nil when there is nothing to undo.
func (s *State) Undo(ctx context.Context) []domain.BoardElement {
	if len(s.undo) == 0 {
		return nil
	}

	spawned := make([]domain.BoardElement, 0, len(s.undo))
	for _, el := range s.undo {
		el.Handle = s.host.SpawnInstance(el.ItemID, el.Position)
		spawned = append(spawned, el)
	}
	s.doc.Elements = append(s.doc.Elements, spawned...)
	s.undo = nil

	s.setState(ctx, domain.RecycleStateClean, 0)
	logger.FromContext(ctx).Info(LogMsgUndone, "elements", len(spawned))

	out := make([]domain.BoardElement, len(spawned))
	copy(out, spawned)
	return out
}

// HandleRecycleAction mass clears a clean board and undoes a cleared one
func (s *State) HandleRecycleAction(ctx context.Context) []domain.BoardElement {
	if s.doc.RecycleState == domain.RecycleStateUndo {
		return s.Undo(ctx)
	}
	return s.MassClear(ctx)
}

// OnPositionChanged discards a pending undo. It does nothing on a clean board.
func (s *State) OnPositionChanged(ctx context.Context) {
	if s.doc.RecycleState != domain.RecycleStateUndo {
		return
	}
	s.undo = nil
	s.setState(ctx, domain.RecycleStateClean, 0)
	logger.FromContext(ctx).Debug(LogMsgUndoDiscarded)
}

// RecycleUnusable recycles every element for which unusable returns true and
// returns them. The recycle state is not changed.
func (s *State) RecycleUnusable(ctx context.Context, unusable func(itemID string) bool) []domain.BoardElement {
	kept := make([]domain.BoardElement, 0, len(s.doc.Elements))
	removed := make([]domain.BoardElement, 0)
	for _, el := range s.doc.Elements {
		if unusable(el.ItemID) {
			s.host.RecycleInstance(el.Handle)
			removed = append(removed, el)
			continue
		}
		kept = append(kept, el)
	}
	s.doc.Elements = kept

	if len(removed) > 0 {
		logger.FromContext(ctx).Info(LogMsgUnusableRecycled, "elements", len(removed))
	}
	s.Save(ctx)
	return removed
}

// Reset recycles every live instance, empties the board and persists it
func (s *State) Reset(ctx context.Context) {
	for _, el := range s.doc.Elements {
		s.host.RecycleInstance(el.Handle)
	}
	wasUndo := s.doc.RecycleState == domain.RecycleStateUndo

	s.doc.Reset()
	s.undo = nil
	s.pending = nil
	s.persister.Persist(ctx, domain.BoardSaveID, &s.doc)

	if wasUndo {
		s.publish(ctx, domain.RecycleStateClean, 0)
	}
	logger.FromContext(ctx).Info(LogMsgBoardReset)
}

func (s *State) setState(ctx context.Context, state domain.RecycleState, cleared int) {
	s.doc.RecycleState = state
	s.persister.Persist(ctx, domain.BoardSaveID, &s.doc)
	s.publish(ctx, state, cleared)
}

func (s *State) publish(ctx context.Context, state domain.RecycleState, cleared int) {
	if s.bus == nil {
		return
	}
	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.BoardRecycleStateChanged,
		Payload: domain.BoardRecycleStatePayload{State: state, Cleared: cleared},
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgStatePublishFailed, "state", state, "error", err)
	}
}

func (s *State) refresh(ctx context.Context) {
	live := s.doc.Elements[:0]
	for _, el := range s.doc.Elements {
		pos, ok := s.host.Position(el.Handle)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgElementPruned, "item_id", el.ItemID, "handle", el.Handle)
			continue
		}
		el.Position = pos
		live = append(live, el)
	}
	s.doc.Elements = live
}

func (s *State) indexOf(handle domain.Handle) int {
	for i, el := range s.doc.Elements {
		if el.Handle == handle {
			return i
		}
	}
	return -1
}
