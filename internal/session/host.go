package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/craftboard/internal/domain"
)

// Host is the presentation layer a session drives
type Host interface {
	SpawnInstance(itemID string, at domain.Position) domain.Handle
	RecycleInstance(handle domain.Handle)
	Position(handle domain.Handle) (domain.Position, bool)
	ShowAlreadyMade(itemID string, at domain.Position)
}

// Mover is implemented by hosts that let the session move instances
type Mover interface {
	MoveInstance(handle domain.Handle, at domain.Position) bool
}

// Instance is a live instance held by a HeadlessHost
type Instance struct {
	Handle   domain.Handle   `json:"handle"`
	ItemID   string          `json:"item_id"`
	Position domain.Position `json:"position"`
}

// Notice is an "already made" indicator shown by a HeadlessHost
type Notice struct {
	ItemID   string          `json:"item_id"`
	Position domain.Position `json:"position"`
}

// HeadlessHost keeps instances in memory. It backs the CLI, the HTTP API and tests.
type HeadlessHost struct {
	mu        sync.Mutex
	instances map[domain.Handle]Instance
	notices   []Notice
	newHandle func() domain.Handle
}

// NewHeadlessHost creates an empty host that issues uuid handles
func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{
		instances: make(map[domain.Handle]Instance),
		newHandle: func() domain.Handle { return domain.Handle(uuid.NewString()) },
	}
}

// SpawnInstance implements Host
func (h *HeadlessHost) SpawnInstance(itemID string, at domain.Position) domain.Handle {
	h.mu.Lock()
	defer h.mu.Unlock()

	handle := h.newHandle()
	h.instances[handle] = Instance{Handle: handle, ItemID: itemID, Position: at}
	return handle
}

// RecycleInstance implements Host
func (h *HeadlessHost) RecycleInstance(handle domain.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.instances, handle)
}

// Position implements Host
func (h *HeadlessHost) Position(handle domain.Handle) (domain.Position, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	inst, ok := h.instances[handle]
	return inst.Position, ok
}

// ShowAlreadyMade implements Host
func (h *HeadlessHost) ShowAlreadyMade(itemID string, at domain.Position) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.notices = append(h.notices, Notice{ItemID: itemID, Position: at})
}

// MoveInstance implements Mover
func (h *HeadlessHost) MoveInstance(handle domain.Handle, at domain.Position) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	inst, ok := h.instances[handle]
	if !ok {
		return false
	}
	inst.Position = at
	h.instances[handle] = inst
	return true
}

// Instances returns the live instances ordered by handle
func (h *HeadlessHost) Instances() []Instance {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Instance, 0, len(h.instances))
	for _, inst := range h.instances {
		out = append(out, inst)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Handle < out[j].Handle })
	return out
}

// DrainNotices returns and clears the notices shown since the last call
func (h *HeadlessHost) DrainNotices() []Notice {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := h.notices
	h.notices = nil
	return out
}
