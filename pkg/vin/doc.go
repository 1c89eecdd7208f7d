// Package vin validates and generates Vehicle Identification Numbers using
// the ISO 3779 check digit scheme used in North America.
//
// # Validation
//
// Input is normalized before anything else: it is uppercased and every
// character outside A-Z and 0-9 is dropped, so separators such as spaces
// and hyphens may appear anywhere. The normalized VIN must be exactly 17
// characters long.
//
//	ok, err := vin.Validate(&raw)
//	if err != nil {
//		var verr *vin.Error
//		if errors.As(err, &verr) {
//			fmt.Println(verr.Kind, verr.VIN)
//		}
//	}
//
// A well formed VIN whose check digit does not match the computed one is
// reported as (false, nil). Errors are reserved for malformed input: see
// [ErrMissingInput], [ErrWrongLength], [ErrIllegalCharacter] and
// [ErrIllegalCheckDigit]. Use [IsValid] when only a boolean is needed.
//
// # Generation
//
// A [Generator] assembles random VINs from a manufacturer prefix table and
// fills in the check digit computed by [ChecksumChar], so every generated
// VIN passes [Validate].
//
//	g := vin.NewGenerator(vin.WithSeed(42))
//	fmt.Println(g.Random())
package vin
