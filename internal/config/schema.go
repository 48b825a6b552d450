package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/config.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/interpreters/0")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// Summary joins all issues into a single line suitable for an error message.
func (r *ValidationResult) Summary() string {
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Path != "" {
			parts = append(parts, issue.Path+": "+issue.Message)
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate validates raw YAML bytes against the config schema.
// The error return is for parse or schema compilation failures; schema
// violations are reported in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	// An empty file means "all defaults".
	if raw == nil {
		raw = map[string]interface{}{}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// ValidateFile reads a file and validates it against the config schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Validate(data)
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectIssues(ve, &issues)
	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}

	seen := make(map[string]bool, len(issues))
	result := make([]ValidationIssue, 0, len(issues))
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

func collectIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectIssues(cause, issues)
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = "/" + strings.Join(ve.InstanceLocation, "/")
	}

	keyword, msg := "", ""
	if ve.ErrorKind != nil {
		if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
			keyword = kwPath[len(kwPath)-1]
		}
		msg = ve.ErrorKind.LocalizedString(printer)
	}
	if keyword == "" || keyword == "$ref" || keyword == "allOf" {
		return
	}

	*issues = append(*issues, ValidationIssue{
		Path:    path,
		Message: msg,
		Keyword: keyword,
	})
}
