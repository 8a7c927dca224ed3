package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/craftboard/internal/domain"
	"github.com/osse101/craftboard/internal/logger"
	"github.com/osse101/craftboard/internal/metrics"
	"github.com/osse101/craftboard/internal/repository"
)

// LoadOutcome reports how LoadOrCreate populated a document
type LoadOutcome int

const (
	// Loaded means the persisted payload was decoded into the document
	Loaded LoadOutcome = iota
	// Created means no payload existed and defaults were written
	Created
	// Recovered means the payload was corrupt and defaults were written over it
	Recovered
	// Unavailable means storage failed; defaults are in memory only
	Unavailable
)

// String implements fmt.Stringer
func (o LoadOutcome) String() string {
	switch o {
	case Loaded:
		return "loaded"
	case Created:
		return "created"
	case Recovered:
		return "recovered"
	case Unavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// BoardResetter is the board side of a game reset
type BoardResetter interface {
	Reset(ctx context.Context)
}

// EntityResetter is the item/recipe side of a game reset
type EntityResetter interface {
	ResetAll(ctx context.Context)
	EnsureStartingValues(ctx context.Context)
}

// Coordinator is the single read/write path between runtime state and storage.
// Storage failures never reach callers; in-memory state stays authoritative.
// A save that could not be read is never written until a game reset, so
// in-memory defaults cannot overwrite stored progress.
type Coordinator struct {
	store repository.Save
	now   func() time.Time

	mu         sync.Mutex
	unreadable map[string]struct{}
}

// NewCoordinator creates a coordinator over store
func NewCoordinator(store repository.Save) *Coordinator {
	return &Coordinator{
		store:      store,
		now:        time.Now,
		unreadable: make(map[string]struct{}),
	}
}

// LoadOrCreate populates doc from the save stored under saveID.
// A missing or corrupt save is replaced by doc's defaults, written immediately.
func (c *Coordinator) LoadOrCreate(ctx context.Context, saveID string, doc Document) LoadOutcome {
	log := logger.FromContext(ctx)

	data, err := c.store.Load(ctx, saveID)
	c.setUnreadable(saveID, err != nil && !errors.Is(err, domain.ErrSaveNotFound))
	if err != nil {
		doc.Reset()
		if errors.Is(err, domain.ErrSaveNotFound) {
			c.Persist(ctx, saveID, doc)
			metrics.SaveDefaultsCreated.Inc()
			log.Debug(LogMsgSaveCreated, "save_id", saveID)
			return Created
		}
		metrics.SaveFailures.WithLabelValues(metrics.OperationLoad).Inc()
		log.Warn(LogMsgSaveLoadFailed, "save_id", saveID, "error", fmt.Errorf("%w: %w", domain.ErrPersistence, err))
		return Unavailable
	}

	if err := json.Unmarshal(data, doc); err != nil {
		doc.Reset()
		metrics.SaveFailures.WithLabelValues(metrics.OperationDecode).Inc()
		log.Warn(LogMsgSaveCorrupt, "save_id", saveID, "error", fmt.Errorf("%w: %w", domain.ErrCorruptSave, err))
		c.Persist(ctx, saveID, doc)
		return Recovered
	}

	log.Debug(LogMsgSaveLoaded, "save_id", saveID)
	return Loaded
}

// Persist stamps doc and writes it under saveID. It reports whether the write
// succeeded; failures are logged and counted, never returned.
func (c *Coordinator) Persist(ctx context.Context, saveID string, doc Document) bool {
	if c.Unreadable(saveID) {
		logger.FromContext(ctx).Debug(LogMsgPersistSkipped, "save_id", saveID)
		return false
	}

	doc.Touch(c.now().UnixMilli())

	if err := c.write(ctx, saveID, doc); err != nil {
		metrics.SaveFailures.WithLabelValues(metrics.OperationSave).Inc()
		logger.FromContext(ctx).Warn(LogMsgPersistFailed, "save_id", saveID, "error", err)
		return false
	}

	metrics.SaveWrites.Inc()
	return true
}

// Unreadable reports whether the last load of saveID failed in storage
func (c *Coordinator) Unreadable(saveID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.unreadable[saveID]
	return ok
}

func (c *Coordinator) setUnreadable(saveID string, unreadable bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if unreadable {
		c.unreadable[saveID] = struct{}{}
		return
	}
	delete(c.unreadable, saveID)
}

func (c *Coordinator) write(ctx context.Context, saveID string, doc Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: "+ErrMsgEncodeFmt, domain.ErrPersistence, saveID, err)
	}
	if err := c.store.Save(ctx, saveID, data); err != nil {
		return fmt.Errorf("%w: "+ErrMsgWriteFmt, domain.ErrPersistence, saveID, err)
	}
	return nil
}

// GameReset clears the board, restores every entity to its defaults and
// reapplies the starting values, in that order. A reset discards stored
// progress on purpose, so unreadable saves become writable again.
func (c *Coordinator) GameReset(ctx context.Context, board BoardResetter, entities EntityResetter) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGameResetBegin)

	c.mu.Lock()
	clear(c.unreadable)
	c.mu.Unlock()

	board.Reset(ctx)
	entities.ResetAll(ctx)
	entities.EnsureStartingValues(ctx)

	log.Info(LogMsgGameResetFinish)
}

// NowMs returns the coordinator clock in milliseconds
func (c *Coordinator) NowMs() int64 {
	return c.now().UnixMilli()
}
