/*
Package publedger implements the read side of a publication ledger on top of
a slot-addressed key-value store (in this case, on top of Bolt).

We implement:

1. Slot derivation, mapping composite logical keys to 256-bit storage slots
via Keccak-256 of the key plus a table identifier.

2. Packed words, holding several sub-fields of a token at fixed bit offsets
within one 256-bit word.

3. Publication records, msgpack-encoded originals and mirrors, where a mirror
carries the key of the original it re-publishes.

4. Mirror resolution, following a mirror's pointer exactly one hop to the
publication it stands for.

# Technical Details

**Slots.**
All state lives in one flat slot space: 32-byte slot, arbitrary value.
A publication record occupies the slot derived from (profileID, pubID) under
the publication table id; a token's packed word occupies the slot derived
from tokenID under the token data table id. Distinct table ids keep the two
key spaces from ever colliding under the same hash.

**Classification.**
A record with a non-zero collect module is an original. A record with a zero
collect module is a mirror and instead carries the key of the publication it
points at. A mirror must point directly at an original; the resolver never
follows a second hop, and a mirror whose pointed profile id is zero resolves
to ErrPublicationDoesNotExist.

**Transactions.**
Every resolution runs entirely inside one storage transaction, so all of its
reads observe a single consistent snapshot. The Bolt backend gets this from
Bolt transactions; the in-memory backend snapshots the slot space.

## Binary encoding

**Record value**: flags (uvarint, low bits are the format version), then
msgpack of the record struct. An absent slot decodes as the zero record.

**Token word**: owner address in bits 0-159, mint timestamp in bits 160-255.
*/
package publedger
