package publedger

// PutPublication stores a record at (profileID, pubID). Deciding what to
// store is the publish workflow's job, outside this package; this is its
// seam into the store (and the test seam).
func (tx *Tx) PutPublication(profileID, pubID Word, pub *Publication) error {
	value, err := encodePublication(nil, pub)
	if err != nil {
		return err
	}
	if tx.ledger.verbose {
		tx.ledger.logf("ledger: PUT pubs/%v/%v mirror=%v", profileID, pubID, pub.IsMirror())
	}
	return tx.stx.Put(PublicationSlot(profileID, pubID), value)
}

// SetTokenData packs and stores the token word for tokenID.
func (tx *Tx) SetTokenData(tokenID Word, td TokenData) error {
	w := PackTokenData(td)
	if tx.ledger.verbose {
		tx.ledger.logf("ledger: PUT tokens/%v owner=%v", tokenID, td.Owner)
	}
	return tx.stx.Put(TokenDataSlot(tokenID), w[:])
}

// setRawSlot writes arbitrary bytes at a slot, bypassing record and word
// encoding. Malformed-state tests need it.
func (tx *Tx) setRawSlot(slot Word, value []byte) error {
	return tx.stx.Put(slot, value)
}
