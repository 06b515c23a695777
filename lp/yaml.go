// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler ("maximize"/"minimize").
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("kind %d: %w", int(k), ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseKind.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// UnmarshalYAML decodes a kind scalar and reports the source line on failure.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if err := k.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	return nil
}

// MarshalText implements encoding.TextMarshaler ("<=", "=", ">=").
func (r Relation) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("relation %d: %w", int(r), ErrUnknownRelation)
	}

	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseRelation.
func (r *Relation) UnmarshalText(b []byte) error {
	v, err := ParseRelation(string(b))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// UnmarshalYAML decodes a relation scalar and reports the source line on failure.
func (r *Relation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if err := r.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	return nil
}

// problemDoc is the YAML shape of a Problem. Pointer fields tell an absent
// key apart from its zero value.
type problemDoc struct {
	Kind        *Kind           `yaml:"kind"`
	Objective   []float64       `yaml:"objective"`
	Constraints []constraintDoc `yaml:"constraints"`
}

type constraintDoc struct {
	Coefficients []float64 `yaml:"coefficients"`
	Relation     *Relation `yaml:"relation"`
	RHS          *float64  `yaml:"rhs"`
}

// Decode reads one YAML document describing a Problem from r.
//
// Unknown fields are rejected, and kind plus every constraint's relation and
// rhs must be present (ErrMissingField); the zero values of Kind and Relation
// are never assumed. The result is not validated otherwise; call Validate.
func Decode(r io.Reader) (Problem, error) {
	var doc problemDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, fmt.Errorf("lp: empty problem document: %w", ErrNoVariables)
		}

		return Problem{}, fmt.Errorf("lp: decode: %w", err)
	}

	if doc.Kind == nil {
		return Problem{}, fmt.Errorf("lp: decode: kind: %w", ErrMissingField)
	}
	p := Problem{
		Kind:        *doc.Kind,
		Objective:   doc.Objective,
		Constraints: make([]Constraint, len(doc.Constraints)),
	}
	for i, c := range doc.Constraints {
		switch {
		case c.Relation == nil:
			return Problem{}, fmt.Errorf("lp: decode: constraint %d: relation: %w", i+1, ErrMissingField)
		case c.RHS == nil:
			return Problem{}, fmt.Errorf("lp: decode: constraint %d: rhs: %w", i+1, ErrMissingField)
		}
		p.Constraints[i] = Constraint{Coefficients: c.Coefficients, Relation: *c.Relation, RHS: *c.RHS}
	}
	if len(doc.Constraints) == 0 {
		p.Constraints = nil
	}

	return p, nil
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, err
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes p as a YAML document to w.
func Encode(w io.Writer, p Problem) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("lp: encode: %w", err)
	}

	return enc.Close()
}
