package publedger

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Word is a 256-bit big-endian value. It doubles as the type of logical ids
// (profile, publication, token) and of raw storage words and derived slots.
type Word [32]byte

// U64 returns v as a word. Handy for ids, which in practice are small.
func U64(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[24:], v)
	return w
}

func WordFromBytes(b []byte) (Word, error) {
	var w Word
	if len(b) != len(w) {
		return w, fmt.Errorf("publedger: word must be %d bytes, got %d", len(w), len(b))
	}
	copy(w[:], b)
	return w, nil
}

func (w Word) IsZero() bool { return w == Word{} }

// Uint64 returns the low 64 bits of w; higher bits are ignored.
func (w Word) Uint64() uint64 { return binary.BigEndian.Uint64(w[24:]) }

func (w Word) String() string { return "0x" + hex.EncodeToString(w[:]) }

func (w *Word) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeBytes(w[:]) }

func (w *Word) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*w = Word{}
	if b == nil {
		return nil
	}
	if len(b) != len(w) {
		return fmt.Errorf("publedger: word must be %d bytes, got %d", len(w), len(b))
	}
	copy(w[:], b)
	return nil
}

var (
	_ msgpack.CustomEncoder = (*Word)(nil)
	_ msgpack.CustomDecoder = (*Word)(nil)
)

// Address is a 160-bit account or module address. The zero value means
// absent/unknown; nothing in this package treats it as a real address.
type Address [20]byte

func (a Address) IsZero() bool { return a == Address{} }

func (a Address) String() string { return "0x" + hex.EncodeToString(a[:]) }

// Word returns the address right-aligned in a 256-bit word.
func (a Address) Word() Word {
	var w Word
	copy(w[12:], a[:])
	return w
}

// AddressFromWord truncates a word to its low 160 bits.
func AddressFromWord(w Word) Address {
	var a Address
	copy(a[:], w[12:])
	return a
}

func (a *Address) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeBytes(a[:]) }

func (a *Address) DecodeMsgpack(dec *msgpack.Decoder) error {
	b, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	*a = Address{}
	if b == nil {
		return nil
	}
	if len(b) != len(a) {
		return fmt.Errorf("publedger: address must be %d bytes, got %d", len(a), len(b))
	}
	copy(a[:], b)
	return nil
}

var (
	_ msgpack.CustomEncoder = (*Address)(nil)
	_ msgpack.CustomDecoder = (*Address)(nil)
)

// ExtractField returns the bitWidth-bit field starting bitOffset bits from
// the least significant end of w, right-aligned in the result. Bits outside
// the field are masked off, so garbage packed next to the field never leaks
// through. The extracted value is not validated; an all-zero result is the
// caller's to interpret.
func ExtractField(w Word, bitOffset, bitWidth uint) Word {
	if bitWidth == 0 || bitOffset+bitWidth > 256 {
		panic(fmt.Errorf("publedger: invalid field bits [%d,%d)", bitOffset, bitOffset+bitWidth))
	}
	return maskWord(rshWord(w, bitOffset), bitWidth)
}

// rshWord shifts w right by the given number of bits, filling with zeroes.
func rshWord(w Word, bits uint) Word {
	if bits == 0 {
		return w
	}
	if bits >= 256 {
		return Word{}
	}

	var limbs [4]uint64 // limbs[0] is most significant
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint64(w[i*8:])
	}

	limbShift := int(bits / 64)
	bitShift := bits % 64

	var out Word
	for i := 3; i >= 0; i-- {
		src := i - limbShift
		if src < 0 {
			break
		}
		v := limbs[src] >> bitShift
		if bitShift > 0 && src > 0 {
			v |= limbs[src-1] << (64 - bitShift)
		}
		binary.BigEndian.PutUint64(out[i*8:], v)
	}
	return out
}

// maskWord zeroes every bit of w at position width or above.
func maskWord(w Word, width uint) Word {
	if width >= 256 {
		return w
	}
	for i := range w {
		lo := uint(8 * (31 - i)) // bit position of this byte's lowest bit
		switch {
		case lo >= width:
			w[i] = 0
		case width-lo < 8:
			w[i] &= 0xFF >> (8 - (width - lo))
		}
	}
	return w
}
