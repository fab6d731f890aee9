package publedger

import "encoding/binary"

// Publication is one ledger record. CollectModule doubles as the record's
// discriminant: non-zero means the record is an original; zero means it is a
// mirror of (PointedProfileID, PointedPubID). The pointed fields are
// meaningless on originals.
type Publication struct {
	ContentURI       string  `msgpack:"u"`
	CollectModule    Address `msgpack:"cm"`
	ReferenceModule  Address `msgpack:"rm"`
	PointedProfileID Word    `msgpack:"pp"`
	PointedPubID     Word    `msgpack:"pi"`
}

func (p *Publication) IsMirror() bool { return p.CollectModule.IsZero() }

// IsZero reports whether p is the zero record, which is how the store
// encodes absence.
func (p *Publication) IsZero() bool { return *p == Publication{} }

// TokenData is the unpacked form of one token word.
type TokenData struct {
	Owner    Address
	MintedAt uint64
}

// Token word layout: owner in bits 0-159, mint timestamp in bits 160-255.
const (
	ownerFieldOffset = 0
	ownerFieldWidth  = 160

	mintedFieldOffset = 160
	mintedFieldWidth  = 96
)

// PackTokenData packs td into a single word per the layout above.
func PackTokenData(td TokenData) Word {
	var w Word
	copy(w[12:], td.Owner[:])
	// the timestamp field is 96 bits wide; a uint64 fills its low 64
	binary.BigEndian.PutUint64(w[4:12], td.MintedAt)
	return w
}

// UnpackTokenData extracts the sub-fields of a token word. High bits beyond
// each field are masked off rather than assumed zero.
func UnpackTokenData(w Word) TokenData {
	return TokenData{
		Owner:    AddressFromWord(ExtractField(w, ownerFieldOffset, ownerFieldWidth)),
		MintedAt: ExtractField(w, mintedFieldOffset, mintedFieldWidth).Uint64(),
	}
}
