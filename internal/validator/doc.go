// Package validator adapts the pure checks in pkg/vin to application-level
// validation: it collects failures as [Issue] values, composes user facing
// messages and renders reports.
//
// # Core Concepts
//
//   - [Severity]: Distinguishes blocking errors from warnings.
//   - [Issue]: A single problem with the field and VIN it refers to.
//   - [Result]: Aggregates issues across many checks.
//
// # Checking a value
//
//	if issue := validator.CheckVIN("vin", &raw); issue != nil {
//		fmt.Println(issue.Message)
//		// Provided VIN '2G1WB5Q37E1110567' is incorrect. Illegal character 'Q' ...
//	}
//
// # Struct tags
//
// Fields of type string or *string tagged with `vin:"required"` or
// `vin:"optional"` are checked by [ValidateStruct]. Optional fields are
// skipped when empty or nil; required ones are always checked.
//
//	type Vehicle struct {
//		VIN string `json:"vin" vin:"required"`
//	}
//	result := validator.ValidateStruct(&Vehicle{VIN: raw})
package validator
