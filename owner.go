package publedger

// UnsafeOwnerOf returns whatever sits in the owner bits of the token word,
// zero address included when the token was never minted. It never fails.
// Every caller must pipe the result into a check that rejects the zero
// address, such as ValidateRecovered.
func (tx *Tx) UnsafeOwnerOf(tokenID Word) Address {
	return AddressFromWord(ExtractField(tx.tokenWord(tokenID), ownerFieldOffset, ownerFieldWidth))
}

// ValidateRecovered rejects the zero address. It stands in for the signature
// recovery step of the surrounding system, which never recovers the zero
// address from a valid signature.
func ValidateRecovered(addr Address) error {
	if addr.IsZero() {
		return ErrSignatureInvalid
	}
	return nil
}

// OwnerOf is the checked owner lookup: UnsafeOwnerOf piped through
// ValidateRecovered.
func (tx *Tx) OwnerOf(tokenID Word) (Address, error) {
	owner := tx.UnsafeOwnerOf(tokenID)
	if err := ValidateRecovered(owner); err != nil {
		return Address{}, err
	}
	return owner, nil
}
