package validator

import (
	"testing"
)

type vehicle struct {
	VIN     string  `json:"vin" vin:"required"`
	Trailer *string `json:"trailer,omitempty" vin:"optional"`
	Owner   string  `json:"owner"`
	Fleet   *fleet  `json:"fleet"`
}

type fleet struct {
	Lead string `vin:"required"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		v           any
		wantChecked int
		wantFields  []string
	}{
		{
			name:        "all valid",
			v:           vehicle{VIN: "2G1WB5E37E1110567"},
			wantChecked: 1,
		},
		{
			name:        "pointer to struct",
			v:           &vehicle{VIN: "2G1WB5E37E1110567", Trailer: strPtr("1M8GDM9AXKP042788")},
			wantChecked: 2,
		},
		{
			name:        "required empty",
			v:           vehicle{},
			wantChecked: 1,
			wantFields:  []string{"vin"},
		},
		{
			name:        "optional invalid",
			v:           vehicle{VIN: "2G1WB5E37E1110567", Trailer: strPtr("nope")},
			wantChecked: 2,
			wantFields:  []string{"trailer"},
		},
		{
			name:        "nested struct",
			v:           vehicle{VIN: "2G1WB5E37E1110567", Fleet: &fleet{Lead: "2G1WB5E38E1110567"}},
			wantChecked: 2,
			wantFields:  []string{"fleet.Lead"},
		},
		{
			name: "not a struct",
			v:    "2G1WB5E37E1110567",
		},
		{
			name: "nil pointer",
			v:    (*vehicle)(nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ValidateStruct(tt.v)
			if r.Checked != tt.wantChecked {
				t.Errorf("Checked = %d, want %d", r.Checked, tt.wantChecked)
			}
			errs := r.Errors()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("len(Errors()) = %d, want %d: %v", len(errs), len(tt.wantFields), errs)
			}
			for i, f := range tt.wantFields {
				if errs[i].Field != f {
					t.Errorf("Errors()[%d].Field = %q, want %q", i, errs[i].Field, f)
				}
			}
		})
	}
}

func TestValidateStruct_BadTags(t *testing.T) {
	type bad struct {
		Count int    `vin:"required"`
		Code  string `vin:"sometimes"`
	}

	r := ValidateStruct(bad{})
	if got := len(r.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d, want 1", got)
	}
	if got := len(r.Warnings()); got != 1 {
		t.Errorf("len(Warnings()) = %d, want 1", got)
	}
	if r.Checked != 0 {
		t.Errorf("Checked = %d, want 0", r.Checked)
	}
}
