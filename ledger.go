package publedger

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Ledger is the top-level handle over a slot store. Resolution only ever
// reads; writes exist as a seam for the publish workflow, which lives
// outside this package.
type Ledger struct {
	store   storage
	logf    func(format string, args ...any)
	verbose bool
}

type Options struct {
	Logf      func(format string, args ...any)
	Verbose   bool
	IsTesting bool
	MmapSize  int
}

// Open opens (creating if necessary) a Bolt-backed ledger at path.
func Open(path string, opt Options) (*Ledger, error) {
	bopt := &bbolt.Options{}
	*bopt = *bbolt.DefaultOptions
	bopt.Timeout = 10 * time.Second
	if opt.IsTesting {
		bopt.NoSync = true
		bopt.NoFreelistSync = true
		bopt.InitialMmapSize = 1024 * 1024 * 5
	} else {
		bopt.InitialMmapSize = 1024 * 1024 * 64
		bopt.FreelistType = bbolt.FreelistMapType
	}
	if opt.MmapSize != 0 {
		bopt.InitialMmapSize = opt.MmapSize
	}

	bdb, err := bbolt.Open(path, 0666, bopt)
	if err != nil {
		return nil, fmt.Errorf("publedger: %w", err)
	}
	store, err := newBoltStorage(bdb)
	if err != nil {
		bdb.Close()
		return nil, fmt.Errorf("publedger: %w", err)
	}
	return newLedger(store, opt), nil
}

// OpenMemory opens a transient in-memory ledger, for tests.
func OpenMemory(opt Options) *Ledger {
	return newLedger(newMemStorage(), opt)
}

func newLedger(store storage, opt Options) *Ledger {
	logf := opt.Logf
	if logf == nil {
		logf = func(format string, args ...any) {}
	}
	return &Ledger{
		store:   store,
		logf:    logf,
		verbose: opt.Verbose,
	}
}

func (l *Ledger) Close() {
	err := l.store.Close()
	if err != nil {
		panic(fmt.Errorf("publedger: closing: %w", err))
	}
}

// Tx is a single consistent view of the ledger. All reads and writes go
// through one.
type Tx struct {
	ledger *Ledger
	stx    storageTx
}

func (l *Ledger) BeginRead() *Tx {
	stx, err := l.store.BeginTx(false)
	if err != nil {
		panic(fmt.Errorf("publedger: failed to start reading: %w", err))
	}
	return &Tx{ledger: l, stx: stx}
}

func (l *Ledger) Read(f func(tx *Tx)) {
	tx := l.BeginRead()
	defer tx.Close()
	f(tx)
}

func (l *Ledger) ReadErr(f func(tx *Tx) error) error {
	tx := l.BeginRead()
	defer tx.Close()
	return f(tx)
}

func (l *Ledger) BeginUpdate() *Tx {
	stx, err := l.store.BeginTx(true)
	if err != nil {
		panic(fmt.Errorf("publedger: failed to start writing: %w", err))
	}
	return &Tx{ledger: l, stx: stx}
}

func (l *Ledger) Write(f func(tx *Tx)) {
	tx := l.BeginUpdate()
	defer tx.Close()
	f(tx)
	err := tx.Commit()
	if err != nil {
		panic(fmt.Errorf("publedger: commit: %w", err))
	}
}

// WriteErr commits if f succeeds and rolls everything back if it fails,
// so a failed write is never partially observed.
func (l *Ledger) WriteErr(f func(tx *Tx) error) error {
	tx := l.BeginUpdate()
	defer tx.Close()
	if err := f(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (tx *Tx) IsWritable() bool {
	return tx.stx.Writable()
}

// Close rolls the transaction back unless it was committed. Safe to call
// multiple times.
func (tx *Tx) Close() {
	err := tx.stx.Rollback()
	if err != nil {
		panic(err)
	}
}

func (tx *Tx) Commit() error {
	return tx.stx.Commit()
}
