package publedger

import (
	"errors"
	"fmt"
)

// ErrPublicationDoesNotExist is returned when resolution reaches a mirror
// whose pointed profile id is zero, i.e. a pointer at a publication that
// cannot exist. It is surfaced verbatim and never retried.
var ErrPublicationDoesNotExist = errors.New("publication does not exist")

// ErrSignatureInvalid is returned by ValidateRecovered for the zero address.
var ErrSignatureInvalid = errors.New("signature invalid")

type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x", e.Msg, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s: (%d) %x", e.Msg, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x...%x", e.Msg, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s: (%d) %x...%x", e.Msg, n, p, s)
		}
	}
}
