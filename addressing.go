package publedger

import "golang.org/x/crypto/sha3"

// Table identifiers namespace slot derivation: the same logical key hashed
// under distinct tables always lands at distinct slots.
var (
	PublicationTable = U64(20)
	TokenDataTable   = U64(2)
)

// DeriveSlot maps the canonical fixed-width encoding of a logical key plus a
// table identifier to a storage slot: keccak256(key ‖ table). Pure and
// deterministic; collisions are those of the hash.
func DeriveSlot(key []byte, table Word) Word {
	h := sha3.NewLegacyKeccak256()
	h.Write(key)
	h.Write(table[:])
	var w Word
	h.Sum(w[:0])
	return w
}

// PublicationSlot derives the slot of the (profileID, pubID) record.
func PublicationSlot(profileID, pubID Word) Word {
	var key [64]byte
	copy(key[:32], profileID[:])
	copy(key[32:], pubID[:])
	return DeriveSlot(key[:], PublicationTable)
}

// TokenDataSlot derives the slot of a token's packed data word.
func TokenDataSlot(tokenID Word) Word {
	return DeriveSlot(tokenID[:], TokenDataTable)
}
