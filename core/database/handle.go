package database

import (
	"sync"

	"gorm.io/gorm"
)

// Handle owns the single relational connection of a run.
// The connection is opened on the first call to DB and released by Close.
type Handle struct {
	cfg     Config
	connect func(Config) (*gorm.DB, error)

	mu sync.Mutex
	db *gorm.DB
}

// NewHandle creates a handle that connects with Connect on first use.
func NewHandle(cfg Config) *Handle {
	return &Handle{cfg: cfg, connect: Connect}
}

// NewHandleFromDB wraps an already open connection.
func NewHandleFromDB(db *gorm.DB) *Handle {
	return &Handle{db: db}
}

// DB returns the open connection, connecting if needed.
func (h *Handle) DB() (*gorm.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db != nil {
		return h.db, nil
	}
	if h.connect == nil {
		return nil, ErrClosed
	}

	db, err := h.connect(h.cfg)
	if err != nil {
		return nil, err
	}
	h.db = db
	return db, nil
}

// Close releases the connection. It is safe to call more than once and on a
// handle that never connected.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connect = nil
	if h.db == nil {
		return nil
	}
	sqlDB, err := h.db.DB()
	h.db = nil
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
