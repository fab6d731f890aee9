package publedger

// ResolvePointed returns the key of the effective publication behind
// (profileID, pubID): the key itself for an original, or the pointed-at key
// for a mirror. Exactly one hop: a mirror is required to point directly at
// an original, and chains are never followed.
//
// A mirror whose pointed profile id is zero points at a publication that
// cannot exist and fails with ErrPublicationDoesNotExist. This guard stands
// in for an existence check of the pointed record, so callers never need
// their own.
func (tx *Tx) ResolvePointed(profileID, pubID Word) (Word, Word, error) {
	pub, err := tx.Publication(profileID, pubID)
	if err != nil {
		return Word{}, Word{}, err
	}
	if !pub.IsMirror() {
		return profileID, pubID, nil
	}
	if pub.PointedProfileID.IsZero() {
		return Word{}, Word{}, ErrPublicationDoesNotExist
	}
	return pub.PointedProfileID, pub.PointedPubID, nil
}

// ResolvePointedWithModule is ResolvePointed plus the collect module of the
// effective record. For a mirror, the pointed record's module is returned
// verbatim, zero included: the pointed record is not re-validated, so a
// malformed mirror-of-a-mirror yields a zero module rather than an error.
func (tx *Tx) ResolvePointedWithModule(profileID, pubID Word) (Word, Word, Address, error) {
	pub, err := tx.Publication(profileID, pubID)
	if err != nil {
		return Word{}, Word{}, Address{}, err
	}
	if !pub.IsMirror() {
		return profileID, pubID, pub.CollectModule, nil
	}
	if pub.PointedProfileID.IsZero() {
		return Word{}, Word{}, Address{}, ErrPublicationDoesNotExist
	}
	pointed, err := tx.Publication(pub.PointedProfileID, pub.PointedPubID)
	if err != nil {
		return Word{}, Word{}, Address{}, err
	}
	return pub.PointedProfileID, pub.PointedPubID, pointed.CollectModule, nil
}
