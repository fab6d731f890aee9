package publedger

// Publication fetches the record stored at (profileID, pubID). An absent
// record is the zero value; there is no separate not-found signal at this
// layer. A decode error means the stored bytes are malformed.
func (tx *Tx) Publication(profileID, pubID Word) (Publication, error) {
	raw := tx.stx.Get(PublicationSlot(profileID, pubID))
	pub, err := decodePublication(raw)
	if tx.ledger.verbose {
		if err != nil {
			tx.ledger.logf("ledger: GET.ERR pubs/%v/%v: %v", profileID, pubID, err)
		} else if pub.IsZero() {
			tx.ledger.logf("ledger: GET.NOTFOUND pubs/%v/%v", profileID, pubID)
		} else {
			tx.ledger.logf("ledger: GET pubs/%v/%v mirror=%v", profileID, pubID, pub.IsMirror())
		}
	}
	return pub, err
}

// PublicationExists reports whether a non-zero record is stored at the key.
func (tx *Tx) PublicationExists(profileID, pubID Word) bool {
	pub, err := tx.Publication(profileID, pubID)
	return err == nil && !pub.IsZero()
}

// TokenData fetches and unpacks the token word for tokenID. A never-written
// token yields the zero TokenData.
func (tx *Tx) TokenData(tokenID Word) TokenData {
	return UnpackTokenData(tx.tokenWord(tokenID))
}

func (tx *Tx) tokenWord(tokenID Word) Word {
	raw := tx.stx.Get(TokenDataSlot(tokenID))
	var w Word
	copy(w[:], raw) // absent slot reads as the zero word
	return w
}
