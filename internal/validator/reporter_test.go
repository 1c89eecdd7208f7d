package validator

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/vin/internal/errors"
)

func sampleResult() *Result {
	result := &Result{Checked: 2}
	result.Add(*CheckVIN("vin", strPtr("2G1WB5Q37E1110567")))
	result.AddWarning("tag", "unknown vin tag option", "")
	return result
}

func TestReporter_Report(t *testing.T) {
	result := sampleResult()

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "1 invalid") {
			t.Error("output missing error summary")
		}
		if !strings.Contains(output, "of 2 checked") {
			t.Error("output missing checked count")
		}
		if !strings.Contains(output, "vin: Provided VIN '2G1WB5Q37E1110567' is incorrect.") {
			t.Errorf("output missing error details:\n%s", output)
		}
		if !strings.Contains(output, "position=6") {
			t.Error("output missing context")
		}
		if !strings.Contains(output, "Warnings:") {
			t.Error("output missing warnings section")
		}
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatJSON)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded Result
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode JSON output: %v", err)
		}
		if len(decoded.Issues) != 2 {
			t.Errorf("decoded issues count = %d, want 2", len(decoded.Issues))
		}
		if decoded.Issues[0].Kind != "illegal_character" {
			t.Errorf("first issue kind = %q, want illegal_character", decoded.Issues[0].Kind)
		}
		if decoded.Issues[1].Severity != SeverityWarning {
			t.Errorf("second issue severity = %v, want warning", decoded.Issues[1].Severity)
		}
		if !strings.Contains(buf.String(), `"severity": "error"`) {
			t.Error("severity should be encoded by name")
		}
	})

	t.Run("yaml format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatYAML)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded Result
		if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode YAML output: %v", err)
		}
		if decoded.Checked != 2 {
			t.Errorf("decoded checked = %d, want 2", decoded.Checked)
		}
		if decoded.Issues[0].Context["normalized"] != "2G1WB5Q37E1110567" {
			t.Errorf("decoded context = %v", decoded.Issues[0].Context)
		}
	})

	t.Run("toml format", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatTOML)
		if err := reporter.Report(result); err != nil {
			t.Fatalf("Report() error: %v", err)
		}

		var decoded Result
		if err := toml.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("failed to decode TOML output: %v\n%s", err, buf.String())
		}
		if len(decoded.Issues) != 2 {
			t.Errorf("decoded issues count = %d, want 2", len(decoded.Issues))
		}
	})

	t.Run("empty result text", func(t *testing.T) {
		var buf bytes.Buffer
		reporter := NewReporter(&buf, FormatText)
		if err := reporter.Report(&Result{Checked: 4}); err != nil {
			t.Fatalf("Report() error: %v", err)
		}
		if !strings.Contains(buf.String(), "4 VIN(s) valid") {
			t.Errorf("output missing success message: %q", buf.String())
		}
	})

	t.Run("nil result", func(t *testing.T) {
		var buf bytes.Buffer
		if err := NewReporter(&buf, FormatJSON).Report(nil); err != nil {
			t.Fatalf("Report(nil) error: %v", err)
		}
		if buf.Len() != 0 {
			t.Error("Report(nil) should write nothing")
		}
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"toml", FormatTOML, false},
		{"", FormatText, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidFormat) {
					t.Fatalf("ParseFormat(%q) error = %v, want ErrInvalidFormat", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
