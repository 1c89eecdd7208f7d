package validator

import (
	"reflect"
	"strings"
)

// TagName is the struct tag read by ValidateStruct.
const TagName = "vin"

// ValidateStruct checks every string or *string field of v tagged with
// `vin:"required"` or `vin:"optional"`. Nested structs and pointers to
// structs are walked; their field names are joined with dots. v must be a
// struct or a pointer to one; anything else yields an empty result.
func ValidateStruct(v any) *Result {
	result := &Result{}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return result
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return result
	}
	walkStruct(rv, "", result)
	return result
}

func walkStruct(rv reflect.Value, prefix string, result *Result) {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		fv := rv.Field(i)
		name := prefix + fieldName(sf)

		tag, tagged := sf.Tag.Lookup(TagName)
		if !tagged {
			if s, ok := structValue(fv); ok {
				walkStruct(s, name+".", result)
			}
			continue
		}

		mode := strings.TrimSpace(tag)
		if mode != "required" && mode != "optional" {
			result.AddWarning(name, "unknown vin tag option \""+tag+"\"", "")
			continue
		}

		raw, ok := stringValue(fv)
		if !ok {
			result.AddError(name, "vin tag on unsupported type "+sf.Type.String(), "")
			continue
		}

		if mode == "optional" && (raw == nil || *raw == "") {
			continue
		}

		result.Checked++
		if issue := CheckVIN(name, raw); issue != nil {
			result.Add(*issue)
		}
	}
}

// fieldName prefers the json name so issues match the wire format.
func fieldName(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return sf.Name
}

func stringValue(fv reflect.Value) (*string, bool) {
	switch {
	case fv.Kind() == reflect.String:
		s := fv.String()
		return &s, true
	case fv.Kind() == reflect.Pointer && fv.Type().Elem().Kind() == reflect.String:
		if fv.IsNil() {
			return nil, true
		}
		s := fv.Elem().String()
		return &s, true
	default:
		return nil, false
	}
}

func structValue(fv reflect.Value) (reflect.Value, bool) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return reflect.Value{}, false
		}
		fv = fv.Elem()
	}
	return fv, fv.Kind() == reflect.Struct
}
