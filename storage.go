package publedger

// storage represents a slot-addressed key-value backend (Bolt, in-memory).
type storage interface {
	// BeginTx starts a new transaction.
	BeginTx(writable bool) (storageTx, error)
	// Close closes the storage.
	Close() error
}

// storageTx is one all-or-nothing view of the slot space. A resolution runs
// entirely inside a single transaction, which is what stands in for the
// atomic call boundary of the original execution environment.
type storageTx interface {
	// Writable returns true if this is a writable transaction.
	Writable() bool

	// Get retrieves the value at slot. Returns nil if the slot was never
	// written. The returned bytes are only valid until the tx ends.
	Get(slot Word) []byte

	// Put stores a value at slot.
	Put(slot Word, value []byte) error

	// Commit commits the transaction.
	Commit() error

	// Rollback aborts the transaction. It should be safe to call multiple times.
	Rollback() error
}
