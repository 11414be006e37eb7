// Package template holds the in-memory representation of an email template: an
// ordered list of component instances, each carrying a flat map of property
// values. The engine treats documents as read-only inputs per compile; whatever
// persists templates owns their lifecycle.
package template

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument marks structural contract violations: the one failure
// class compilation surfaces to the caller instead of degrading around.
var ErrInvalidDocument = errors.New("template: invalid document")

// ComponentInstance is one placed component within a template. PropertyValues
// need not cover every property the schema defines; missing keys fall back to
// the schema default or empty string during compilation.
type ComponentInstance struct {
	TypeName       string            `json:"type" yaml:"type"`
	PropertyValues map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
}

// Value returns the explicit property value for key, or "" when unset.
func (c ComponentInstance) Value(key string) string {
	if c.PropertyValues == nil {
		return ""
	}
	return c.PropertyValues[key]
}

// Document is an ordered sequence of component instances. Order is rendering
// order, top to bottom.
type Document struct {
	Name      string              `json:"name,omitempty" yaml:"name,omitempty"`
	Subject   string              `json:"subject,omitempty" yaml:"subject,omitempty"`
	Instances []ComponentInstance `json:"components" yaml:"components"`
}

// Validate enforces the structural contract. It does not check type names
// against any registry; unknown types degrade to omission at compile time.
func (d Document) Validate() error {
	if d.Instances == nil {
		return fmt.Errorf("%w: component sequence is required", ErrInvalidDocument)
	}
	for idx, instance := range d.Instances {
		if instance.TypeName == "" {
			return fmt.Errorf("%w: component %d has no type name", ErrInvalidDocument, idx)
		}
	}
	return nil
}

// ParseDocument decodes a document from YAML or JSON. YAML is the superset, so
// a single decoder covers both on-disk formats the editor exports.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("template: parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// MarshalJSON keeps an explicit empty component list instead of null so a
// round-tripped document still satisfies Validate.
func (d Document) MarshalJSON() ([]byte, error) {
	type alias Document
	out := alias(d)
	if out.Instances == nil {
		out.Instances = []ComponentInstance{}
	}
	return json.Marshal(out)
}
