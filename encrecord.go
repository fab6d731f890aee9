package publedger

import (
	"encoding/binary"

	"github.com/vmihailenco/msgpack/v5"
)

type recordFlags uint64

const (
	rfVerBit0 = recordFlags(1 << iota)
	rfVerBit1

	rfVerMask       = rfVerBit0 | rfVerBit1
	rfVer1          = rfVerBit0
	rfSupportedMask = rfVer1
	rfDefault       = rfVer1
)

// encodePublication appends the stored form of p to buf: uvarint flags
// carrying the format version, then the msgpack body.
func encodePublication(buf []byte, p *Publication) ([]byte, error) {
	buf = binary.AppendUvarint(buf, uint64(rfDefault))
	body, err := msgpack.Marshal(p)
	if err != nil {
		return nil, err
	}
	return append(buf, body...), nil
}

// decodePublication decodes a stored value. A nil/empty value is the zero
// record: the store has no separate not-found signal at this layer.
func decodePublication(data []byte) (Publication, error) {
	var p Publication
	if len(data) == 0 {
		return p, nil
	}

	v, n := binary.Uvarint(data)
	if n <= 0 {
		return p, dataErrf(data, 0, nil, "invalid record: bad flags")
	}
	flags := recordFlags(v)
	if flags&^rfSupportedMask != 0 {
		return p, dataErrf(data, 0, nil, "invalid record: unsupported flags %x", v)
	}
	if flags&rfVerMask != rfVer1 {
		return p, dataErrf(data, 0, nil, "invalid record: unsupported version")
	}

	if err := msgpack.Unmarshal(data[n:], &p); err != nil {
		return p, dataErrf(data, n, err, "invalid record body")
	}
	return p, nil
}
