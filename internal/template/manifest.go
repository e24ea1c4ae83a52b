package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema/descriptor.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// Descriptor is one entry of a template file's describe output.
type Descriptor struct {
	// Name identifies the template. Required.
	Name string `yaml:"name" json:"name"`

	// Description is optional free text for the picker.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// MinCLIVersion is an optional semver constraint on the CLI version;
	// descriptors that don't satisfy it are skipped with a warning.
	MinCLIVersion string `yaml:"minCliVersion,omitempty" json:"minCliVersion,omitempty"`
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("descriptor.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("descriptor.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ParseDescriptors decodes a describe document. Template authors may emit
// YAML or JSON (JSON is valid YAML). A single mapping yields one descriptor,
// a sequence yields one per element in order, and empty output yields none.
// The document is validated against the embedded schema before decoding.
func ParseDescriptors(data []byte) ([]Descriptor, error) {
	var root interface{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing describe output: %w", err)
	}
	if root == nil {
		return nil, nil
	}

	if err := validateDescriptors(root); err != nil {
		return nil, err
	}

	if _, ok := root.([]interface{}); ok {
		var list []Descriptor
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("decoding descriptor list: %w", err)
		}
		return list, nil
	}

	var single Descriptor
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, fmt.Errorf("decoding descriptor: %w", err)
	}
	return []Descriptor{single}, nil
}

// validateDescriptors checks the decoded document against the embedded JSON
// schema. The YAML value is round-tripped through JSON so the validator sees
// json.Number and plain maps, matching schema semantics.
func validateDescriptors(root interface{}) error {
	schema, err := getSchema()
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	jsonData, err := json.Marshal(root)
	if err != nil {
		return fmt.Errorf("converting describe output to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("preparing describe output for validation: %w", err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("invalid template descriptor: %w", err)
	}
	return nil
}

// Compatible reports whether the descriptor's MinCLIVersion constraint
// accepts cliVersion. An absent constraint always passes; so does an
// unparsable CLI version (development builds carry a pseudo-version).
func (d Descriptor) Compatible(cliVersion string) (bool, error) {
	if d.MinCLIVersion == "" {
		return true, nil
	}

	constraint, err := semver.NewConstraint(d.MinCLIVersion)
	if err != nil {
		return false, fmt.Errorf("minCliVersion %q: %w", d.MinCLIVersion, err)
	}

	v, err := semver.NewVersion(cliVersion)
	if err != nil {
		return true, nil
	}
	// Development builds (v0.0.0-dev) are never gated.
	if v.Prerelease() == "dev" {
		return true, nil
	}

	return constraint.Check(v), nil
}
