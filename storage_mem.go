package publedger

import (
	"fmt"
	"slices"
	"sync"
)

type memStorage struct {
	mu     sync.Mutex
	cond   *sync.Cond
	slots  map[Word][]byte
	closed bool
	writer bool
}

// newMemStorage returns a transient in-memory storage implementation
// intended for tests.
func newMemStorage() storage {
	s := &memStorage{slots: make(map[Word][]byte)}
	s.cond = sync.NewCond(&s.mu)
	return s
}

func (s *memStorage) BeginTx(writable bool) (storageTx, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, fmt.Errorf("storage closed")
	}
	if writable {
		for s.writer && !s.closed {
			s.cond.Wait()
		}
		if s.closed {
			return nil, fmt.Errorf("storage closed")
		}
		s.writer = true
	}

	// Snapshot the entire slot space for transactional isolation
	// (simplicity over efficiency). Values are never mutated in place,
	// so sharing them between snapshots is fine.
	snap := make(map[Word][]byte, len(s.slots))
	for k, v := range s.slots {
		snap[k] = v
	}

	return &memTx{
		base:     s,
		writable: writable,
		slots:    snap,
	}, nil
}

func (s *memStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.slots = nil
	if s.cond != nil {
		s.cond.Broadcast()
	}
	return nil
}

type memTx struct {
	base     *memStorage
	writable bool
	slots    map[Word][]byte
	closed   bool
}

func (tx *memTx) Writable() bool { return tx.writable }

func (tx *memTx) closeLocked() {
	if tx.closed {
		return
	}
	tx.closed = true
	if tx.writable {
		tx.base.writer = false
		tx.base.cond.Broadcast()
	}
}

func (tx *memTx) Get(slot Word) []byte {
	if tx.closed {
		panic("tx is closed")
	}
	return tx.slots[slot]
}

func (tx *memTx) Put(slot Word, value []byte) error {
	if tx.closed {
		panic("tx is closed")
	}
	if !tx.writable {
		return fmt.Errorf("tx not writable")
	}
	tx.slots[slot] = slices.Clone(value)
	return nil
}

func (tx *memTx) Commit() error {
	if tx.closed {
		return nil
	}
	if !tx.writable {
		return fmt.Errorf("tx not writable")
	}
	tx.base.mu.Lock()
	defer tx.base.mu.Unlock()
	if tx.base.closed {
		tx.closeLocked()
		return fmt.Errorf("storage closed")
	}
	tx.base.slots = tx.slots
	tx.closeLocked()
	return nil
}

func (tx *memTx) Rollback() error {
	tx.base.mu.Lock()
	defer tx.base.mu.Unlock()
	tx.closeLocked()
	return nil
}
