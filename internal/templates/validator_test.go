package templates

import (
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantValid   bool
		wantKeyword string
	}{
		{
			name:      "minimal catalog",
			data:      minimalCatalog,
			wantValid: true,
		},
		{
			name: "missing kind",
			data: `version: "1"
templates:
  - id: new_project
    name: New Project
`,
			wantKeyword: "required",
		},
		{
			name: "unknown kind",
			data: `version: "1"
templates:
  - id: new_project
    name: New Project
    kind: workspace
`,
			wantKeyword: "enum",
		},
		{
			name: "bad id pattern",
			data: `version: "1"
templates:
  - id: New-Project
    name: New Project
    kind: project
`,
			wantKeyword: "pattern",
		},
		{
			name: "duplicate id",
			data: `version: "1"
templates:
  - id: new_project
    name: New Project
    kind: project
  - id: new_project
    name: Again
    kind: project
`,
			wantKeyword: "unique",
		},
		{
			name: "no new_project entry",
			data: `version: "1"
templates:
  - id: http_service
    name: HTTP Service
    kind: module
`,
			wantKeyword: "required",
		},
		{
			name: "new_project declared as module",
			data: `version: "1"
templates:
  - id: new_project
    name: New Project
    kind: module
`,
			wantKeyword: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.data))
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.wantValid, result.Issues)
			}
			if tt.wantKeyword == "" {
				return
			}
			found := false
			for _, issue := range result.Issues {
				if issue.Keyword == tt.wantKeyword {
					found = true
				}
			}
			if !found {
				t.Errorf("expected an issue with keyword %q, got %+v", tt.wantKeyword, result.Issues)
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	if _, err := Validate([]byte("templates: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestParseReturnsValidationError(t *testing.T) {
	_, err := Parse([]byte(`version: "1"
templates: []
`))
	if err == nil {
		t.Fatal("expected error for empty template list")
	}
	if !IsValidationError(err) {
		t.Errorf("expected *ValidationError, got %T: %v", err, err)
	}
}
