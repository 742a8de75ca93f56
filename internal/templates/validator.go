package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/catalog.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a catalog validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema or consistency problem.
type ValidationIssue struct {
	Path    string // Instance location, e.g. "/templates/2/id"
	Message string
	Keyword string // Failing schema keyword, or "unique"/"required" for consistency checks
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError wraps a failed ValidationResult so Parse can return it as an error.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return "invalid template catalog: " + strings.Join(msgs, "; ")
}

// IsValidationError reports whether err carries catalog validation issues.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("catalog.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("catalog.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks raw catalog YAML against the schema and then for
// consistency: unique ids and a new_project entry of kind project.
// The error return is for I/O or schema compilation failures only.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		var validationErr *jsonschema.ValidationError
		if !errors.As(err, &validationErr) {
			return nil, fmt.Errorf("unexpected validation error type: %w", err)
		}
		return &ValidationResult{Issues: extractIssues(validationErr)}, nil
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if issues := checkConsistency(&c); len(issues) > 0 {
		return &ValidationResult{Issues: issues}, nil
	}
	return &ValidationResult{Valid: true}, nil
}

func checkConsistency(c *Catalog) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[string]int)
	for i, t := range c.Templates {
		if first, dup := seen[t.ID]; dup {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("/templates/%d/id", i),
				Message: fmt.Sprintf("duplicate template id %q (first at /templates/%d)", t.ID, first),
				Keyword: "unique",
			})
			continue
		}
		seen[t.ID] = i

		if t.IsProject() && t.Kind != KindProject {
			issues = append(issues, ValidationIssue{
				Path:    fmt.Sprintf("/templates/%d/kind", i),
				Message: fmt.Sprintf("template %q must be of kind %q", NewProjectID, KindProject),
				Keyword: "kind",
			})
		}
	}
	if _, ok := seen[NewProjectID]; !ok {
		issues = append(issues, ValidationIssue{
			Path:    "/templates",
			Message: fmt.Sprintf("catalog has no %q template", NewProjectID),
			Keyword: "required",
		})
	}
	return issues
}

// extractIssues returns leaf-level issues from the ValidationError tree.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectValidationIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword := ""
	msg := ""
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}

	// Container keywords carry no detail of their own.
	if keyword == "allOf" || keyword == "$ref" || keyword == "" {
		return
	}

	*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
}

func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
