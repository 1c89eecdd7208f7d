package validator

import (
	"fmt"
	"strconv"

	"github.com/thoreinstein/vin/internal/errors"
	"github.com/thoreinstein/vin/pkg/vin"
)

// KindCheckDigitMismatch marks a well formed VIN whose check digit is wrong.
const KindCheckDigitMismatch = "check_digit_mismatch"

// Message composes the message shown to users for a rejected VIN. cause is
// the error returned by vin.Validate; it may be nil for a check digit
// mismatch, in which case detail is used instead.
func Message(raw *string, cause error, detail string) string {
	shown := "<nil>"
	if raw != nil {
		shown = *raw
	}

	msg := fmt.Sprintf("Provided VIN '%s' is incorrect.", shown)
	if cause != nil && cause.Error() != "" {
		return msg + " " + cause.Error()
	}
	if detail != "" {
		return msg + " " + detail
	}
	return msg
}

// CheckVIN validates raw and returns nil when it is a valid VIN, or an
// error issue for field describing why it is not.
func CheckVIN(field string, raw *string) *Issue {
	ok, err := vin.Validate(raw)
	if err == nil && ok {
		return nil
	}

	issue := &Issue{
		Severity: SeverityError,
		Field:    field,
	}
	if raw != nil {
		issue.Value = *raw
	}

	var verr *vin.Error
	switch {
	case errors.As(err, &verr):
		issue.Kind = verr.Kind.String()
		issue.Message = Message(raw, verr, "")
		issue.Context = errorContext(verr)
	case err != nil:
		issue.Message = Message(raw, err, "")
	default:
		issue.Kind = KindCheckDigitMismatch
		issue.Message, issue.Context = mismatch(raw)
	}
	return issue
}

func errorContext(verr *vin.Error) map[string]string {
	ctx := map[string]string{}
	if verr.VIN != "" {
		ctx["normalized"] = verr.VIN
	}
	switch verr.Kind {
	case vin.KindIllegalCharacter:
		ctx["char"] = string(verr.Char)
		ctx["position"] = strconv.Itoa(verr.Position)
	case vin.KindIllegalCheckDigit:
		ctx["char"] = string(verr.Char)
	}
	if len(ctx) == 0 {
		return nil
	}
	return ctx
}

// mismatch describes a VIN that normalized and checksummed fine but carries
// the wrong check digit.
func mismatch(raw *string) (string, map[string]string) {
	normalized, err := vin.Normalize(raw)
	if err != nil {
		return Message(raw, err, ""), nil
	}
	want, err := vin.ChecksumChar(normalized)
	if err != nil {
		return Message(raw, err, ""), nil
	}

	got := normalized[vin.CheckDigitIndex]
	detail := fmt.Sprintf("Check digit '%c' for VIN '%s' should be '%c'", got, normalized, want)
	return Message(raw, nil, detail), map[string]string{
		"normalized": normalized,
		"char":       string(got),
		"expected":   string(want),
	}
}

// ValidateVINs checks every value and collects the failures.
func ValidateVINs(values []string) *Result {
	result := &Result{}
	for i := range values {
		result.Checked++
		if issue := CheckVIN("", &values[i]); issue != nil {
			result.Add(*issue)
		}
	}
	return result
}
