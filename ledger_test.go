package publedger

import (
	"errors"
	"os"
	"reflect"
	"testing"
)

func TestLedger_BoltBackend(t *testing.T) {
	lg := setup(t)
	pub := Publication{ContentURI: "ar://tx1", CollectModule: testAddr(0xC0)}
	lg.Write(func(tx *Tx) {
		ensure(tx.PutPublication(U64(1), U64(1), &pub))
		ensure(tx.SetTokenData(U64(1), TokenData{Owner: testAddr(0x01), MintedAt: 99}))
	})

	lg.Read(func(tx *Tx) {
		deepEqual(t, must(tx.Publication(U64(1), U64(1))), pub)
		if got := tx.UnsafeOwnerOf(U64(1)); got != testAddr(0x01) {
			t.Fatalf("UnsafeOwnerOf = %v, wanted %v", got, testAddr(0x01))
		}
		if got := must(tx.Publication(U64(2), U64(2))); !got.IsZero() {
			t.Fatalf("Publication(absent) = %+v, wanted zero record", got)
		}
	})
}

func TestLedger_BoltPersistsAcrossReopen(t *testing.T) {
	dbFile := must(os.CreateTemp("", "publedger_test_*.db"))
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	pub := Publication{CollectModule: testAddr(0xEE)}
	lg := must(Open(dbFile.Name(), Options{IsTesting: true}))
	lg.Write(func(tx *Tx) {
		ensure(tx.PutPublication(U64(5), U64(10), &pub))
	})
	lg.Close()

	lg = must(Open(dbFile.Name(), Options{IsTesting: true}))
	defer lg.Close()
	lg.Read(func(tx *Tx) {
		deepEqual(t, must(tx.Publication(U64(5), U64(10))), pub)
	})
}

func TestLedger_WriteErrRollsBack(t *testing.T) {
	boom := errors.New("boom")
	for _, tt := range []struct {
		name string
		open func(t testing.TB) *Ledger
	}{
		{"mem", setupMemory},
		{"bolt", setup},
	} {
		t.Run(tt.name, func(t *testing.T) {
			lg := tt.open(t)
			err := lg.WriteErr(func(tx *Tx) error {
				ensure(tx.PutPublication(U64(1), U64(1), &Publication{CollectModule: testAddr(1)}))
				return boom
			})
			if !errors.Is(err, boom) {
				t.Fatalf("WriteErr = %v, wanted boom", err)
			}
			lg.Read(func(tx *Tx) {
				if got := must(tx.Publication(U64(1), U64(1))); !got.IsZero() {
					t.Fatalf("failed write leaked: %+v", got)
				}
			})
		})
	}
}

func TestLedger_BackendParity(t *testing.T) {
	scenario := func(t *testing.T, lg *Ledger) {
		lg.Write(func(tx *Tx) {
			ensure(tx.PutPublication(U64(5), U64(10), &Publication{CollectModule: testAddr(0xAB)}))
			ensure(tx.PutPublication(U64(7), U64(2), &Publication{PointedProfileID: U64(5), PointedPubID: U64(10)}))
		})
		lg.Read(func(tx *Tx) {
			p, i, m := must3(tx.ResolvePointedWithModule(U64(7), U64(2)))
			if p != U64(5) || i != U64(10) || m != testAddr(0xAB) {
				t.Fatalf("resolved = (%v,%v,%v), wanted (5,10,0xAB..)", p, i, m)
			}
		})
	}

	t.Run("mem", func(t *testing.T) { scenario(t, setupMemory(t)) })
	t.Run("bolt", func(t *testing.T) { scenario(t, setup(t)) })
}

func TestLedger_VerboseLogging(t *testing.T) {
	var lines []string
	lg := OpenMemory(Options{
		Verbose: true,
		Logf: func(format string, args ...any) {
			lines = append(lines, format)
		},
	})
	t.Cleanup(lg.Close)

	lg.Write(func(tx *Tx) {
		ensure(tx.PutPublication(U64(1), U64(1), &Publication{CollectModule: testAddr(1)}))
	})
	lg.Read(func(tx *Tx) {
		_ = must(tx.Publication(U64(1), U64(1)))
		_ = must(tx.Publication(U64(2), U64(2)))
	})

	if len(lines) != 3 {
		t.Fatalf("logged %d lines, wanted 3: %v", len(lines), lines)
	}
}

func setup(t testing.TB) *Ledger {
	t.Helper()

	dbFile := must(os.CreateTemp("", "publedger_test_*.db"))
	t.Logf("DB: %s", dbFile.Name())
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	lg := must(Open(dbFile.Name(), Options{IsTesting: true}))
	t.Cleanup(lg.Close)
	return lg
}

func setupMemory(t testing.TB) *Ledger {
	t.Helper()
	lg := OpenMemory(Options{})
	t.Cleanup(lg.Close)
	return lg
}

func deepEqual[T any](t testing.TB, a, e T) {
	if !reflect.DeepEqual(a, e) {
		t.Helper()
		t.Errorf("** got %v, wanted %v", a, e)
	}
}
