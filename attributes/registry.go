package attributes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KevinKickass/daqmx/daqerr"
	"github.com/KevinKickass/daqmx/internal/logging"
)

//go:embed metadata/attributes.yaml
var metadataYAML []byte

//go:embed metadata/schema.json
var metadataSchemaJSON string

type document struct {
	Version    int         `yaml:"version"`
	Attributes []Attribute `yaml:"attributes"`
}

// Registry indexes attribute metadata.
type Registry struct {
	byID   map[ID]*Attribute
	byName map[string]*Attribute
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry built from the embedded metadata.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = Parse(metadataYAML)
		if defaultErr != nil {
			logging.L().Error("Failed to load attribute metadata", zap.Error(defaultErr))
		}
	})
	return defaultReg, defaultErr
}

// Lookup finds an attribute in the default registry.
func Lookup(id ID) (*Attribute, bool) {
	reg, err := Default()
	if err != nil {
		return nil, false
	}
	return reg.Lookup(id)
}

// Parse validates a metadata document against the schema and indexes it.
func Parse(data []byte) (*Registry, error) {
	validator, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create validator: %w", err)
	}
	if err := validator.validate(data); err != nil {
		return nil, fmt.Errorf("attribute metadata: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal attribute metadata: %w", err)
	}

	reg := &Registry{
		byID:   make(map[ID]*Attribute, len(doc.Attributes)),
		byName: make(map[string]*Attribute, len(doc.Attributes)),
	}
	for i := range doc.Attributes {
		a := &doc.Attributes[i]
		if prev, dup := reg.byID[a.ID]; dup {
			return nil, fmt.Errorf("attribute id 0x%04X used by %s and %s", int32(a.ID), prev.Name, a.Name)
		}
		if a.Resettable && a.Access != ReadWrite {
			return nil, fmt.Errorf("attribute %s is resettable but not writable", a.Name)
		}
		reg.byID[a.ID] = a
		reg.byName[a.Symbol()] = a
	}
	return reg, nil
}

// Lookup finds an attribute by ID.
func (r *Registry) Lookup(id ID) (*Attribute, bool) {
	a, ok := r.byID[id]
	return a, ok
}

// ByName finds an attribute by its name with or without underscores.
func (r *Registry) ByName(name string) (*Attribute, bool) {
	a, ok := r.byName[strings.ReplaceAll(name, "_", "")]
	return a, ok
}

// Len returns the number of attributes.
func (r *Registry) Len() int { return len(r.byID) }

// All returns the attributes of a scope, in no particular order.
func (r *Registry) All(scope Scope) []*Attribute {
	var out []*Attribute
	for _, a := range r.byID {
		if a.Scope == scope {
			out = append(out, a)
		}
	}
	return out
}

// Op is an attribute operation.
type Op int

const (
	OpGet Op = iota
	OpSet
	OpReset
)

// Check validates an operation against the metadata. IDs missing from the
// metadata are rejected.
func Check(id ID, cat Category, op Op) error {
	a, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%s: %w", id, daqerr.ErrUnknownAttribute)
	}
	if op != OpReset && a.Category != cat {
		return fmt.Errorf("%s is %s, not %s: %w", a.Name, a.Category, cat, daqerr.ErrAttributeCategory)
	}
	switch op {
	case OpSet:
		if !a.Writable() {
			return fmt.Errorf("%s: %w", a.Name, daqerr.ErrAttributeReadOnly)
		}
	case OpReset:
		if !a.Resettable {
			return fmt.Errorf("%s: %w", a.Name, daqerr.ErrAttributeNotResettable)
		}
	}
	return nil
}

type validator struct {
	schema *jsonschema.Schema
}

func newValidator() (*validator, error) {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("attribute-metadata-v1.json",
		strings.NewReader(metadataSchemaJSON)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("attribute-metadata-v1.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &validator{schema: schema}, nil
}

// validate checks YAML data against the schema. The document goes through
// JSON first so the validator only sees JSON value types.
func (v *validator) validate(data []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	js, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	var doc interface{}
	if err := json.Unmarshal(js, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
