package publedger

import "go.etcd.io/bbolt"

var slotsBucket = []byte("slots")

type boltStorage struct {
	bdb *bbolt.DB
}

func newBoltStorage(bdb *bbolt.DB) (storage, error) {
	err := bdb.Update(func(btx *bbolt.Tx) error {
		_, err := btx.CreateBucketIfNotExists(slotsBucket)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &boltStorage{bdb: bdb}, nil
}

func (s *boltStorage) BeginTx(writable bool) (storageTx, error) {
	btx, err := s.bdb.Begin(writable)
	if err != nil {
		return nil, err
	}
	return &boltTx{btx: btx}, nil
}

func (s *boltStorage) Close() error {
	return s.bdb.Close()
}

type boltTx struct {
	btx *bbolt.Tx
}

func (tx *boltTx) BoltTx() *bbolt.Tx { return tx.btx }

func (tx *boltTx) Writable() bool { return tx.btx.Writable() }

func (tx *boltTx) Get(slot Word) []byte {
	return tx.btx.Bucket(slotsBucket).Get(slot[:])
}

func (tx *boltTx) Put(slot Word, value []byte) error {
	return tx.btx.Bucket(slotsBucket).Put(slot[:], value)
}

func (tx *boltTx) Commit() error { return tx.btx.Commit() }

func (tx *boltTx) Rollback() error {
	err := tx.btx.Rollback()
	if err == bbolt.ErrTxClosed {
		return nil
	}
	return err
}
