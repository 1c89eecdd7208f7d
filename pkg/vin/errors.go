package vin

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors, one per Kind. Every *Error unwraps to the sentinel of
// its kind so callers can use errors.Is.
var (
	ErrMissingInput      = errors.New("missing VIN")
	ErrWrongLength       = errors.New("wrong VIN length")
	ErrIllegalCharacter  = errors.New("illegal VIN character")
	ErrIllegalCheckDigit = errors.New("illegal VIN check digit")
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindMissingInput means no VIN was supplied at all.
	KindMissingInput Kind = iota + 1
	// KindWrongLength means the normalized VIN is not 17 characters long.
	KindWrongLength
	// KindIllegalCharacter means a character has no transliteration value.
	KindIllegalCharacter
	// KindIllegalCheckDigit means position 8 holds neither a digit nor 'X'.
	KindIllegalCheckDigit
)

func (k Kind) String() string {
	switch k {
	case KindMissingInput:
		return "missing_input"
	case KindWrongLength:
		return "wrong_length"
	case KindIllegalCharacter:
		return "illegal_character"
	case KindIllegalCheckDigit:
		return "illegal_check_digit"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingInput:
		return ErrMissingInput
	case KindWrongLength:
		return ErrWrongLength
	case KindIllegalCharacter:
		return ErrIllegalCharacter
	case KindIllegalCheckDigit:
		return ErrIllegalCheckDigit
	default:
		return nil
	}
}

// Error describes why a VIN could not be validated.
type Error struct {
	// Kind identifies the failure.
	Kind Kind
	// VIN is the normalized VIN the failure refers to. It is empty for
	// KindMissingInput.
	VIN string
	// Char is the offending character for KindIllegalCharacter and
	// KindIllegalCheckDigit.
	Char byte
	// Position is the 0-based index of Char in VIN for KindIllegalCharacter.
	Position int
}

// Error returns the stable, human-readable message for the failure.
func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingInput:
		return "VIN should not be null"
	case KindWrongLength:
		return "Length of VIN (without possible additional characters) should equal 17"
	case KindIllegalCharacter:
		return fmt.Sprintf("Illegal character '%c' in VIN '%s' at position %d", e.Char, e.VIN, e.Position)
	case KindIllegalCheckDigit:
		return fmt.Sprintf("Illegal check digit '%c' for VIN '%s'", e.Char, e.VIN)
	default:
		return "invalid VIN"
	}
}

// Unwrap returns the sentinel error matching e.Kind.
func (e *Error) Unwrap() error {
	return e.Kind.sentinel()
}
