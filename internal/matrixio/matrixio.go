// SPDX-License-Identifier: MIT
// Package matrixio reads and writes matrices as small YAML or JSON documents.
//
// A document carries either row-major rows or a column-major buffer:
//
//	rows: [[1, 2], [3, 4]]
//
//	data: [1, 3, 2, 4]
//	ld: 2
//
// Decoding goes through gopkg.in/yaml.v3, whose parser also accepts JSON
// input. Encoding writes YAML or JSON depending on the requested Format.
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"math"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linalg/matrix"
)

// Format selects the output encoding.
type Format string

const (
	// FormatYAML writes block-style YAML with flow-style rows.
	FormatYAML Format = "yaml"
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
)

var (
	// ErrEmptyDocument is returned when the input holds neither rows nor data.
	ErrEmptyDocument = errors.New("matrixio: document has neither rows nor data")

	// ErrAmbiguousDocument is returned when both rows and data are present.
	ErrAmbiguousDocument = errors.New("matrixio: document has both rows and data")

	// ErrUnknownFormat is returned for a Format other than yaml or json.
	ErrUnknownFormat = errors.New("matrixio: unknown format")
)

// json mirrors encoding/json behavior (sorted map keys, HTML escaping).
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the on-disk shape of one matrix.
type Document struct {
	Rows [][]float64 `yaml:"rows,omitempty,flow" json:"rows,omitempty"`
	Data []float64   `yaml:"data,omitempty,flow" json:"data,omitempty"`
	LD   int         `yaml:"ld,omitempty" json:"ld,omitempty"`
}

// Scalar is a float64 that survives JSON encoding when it is not finite.
// ±Inf and NaN are written as the strings "+Inf", "-Inf" and "NaN".
type Scalar float64

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	f := float64(s)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}

	return json.Marshal(f)
}

// Scalars converts v element by element; nil stays nil.
func Scalars(v []float64) []Scalar {
	if v == nil {
		return nil
	}
	out := make([]Scalar, len(v))
	for i, f := range v {
		out[i] = Scalar(f)
	}

	return out
}

// MarshalJSON implements json.Marshaler. Entries go through Scalar so a
// matrix holding ±Inf or NaN still encodes.
func (d Document) MarshalJSON() ([]byte, error) {
	type wire struct {
		Rows [][]Scalar `json:"rows,omitempty"`
		Data []Scalar   `json:"data,omitempty"`
		LD   int        `json:"ld,omitempty"`
	}
	w := wire{Data: Scalars(d.Data), LD: d.LD}
	if d.Rows != nil {
		w.Rows = make([][]Scalar, len(d.Rows))
		for i, row := range d.Rows {
			w.Rows[i] = Scalars(row)
		}
	}

	return json.Marshal(w)
}

// FromMatrix converts m into a row-form Document.
func FromMatrix(m *matrix.Dense) Document {
	return Document{Rows: m.RawRows()}
}

// Dense builds the matrix the document describes.
// Errors: ErrEmptyDocument, ErrAmbiguousDocument, or the matrix package
// sentinel for ragged rows / a bad leading dimension.
func (d Document) Dense() (*matrix.Dense, error) {
	switch {
	case d.Rows != nil && d.Data != nil:
		return nil, ErrAmbiguousDocument
	case d.Rows != nil:
		m, err := matrix.NewDenseFromRows(d.Rows)
		if err != nil {
			return nil, fmt.Errorf("matrixio: rows: %w", err)
		}
		return m, nil
	case d.Data != nil:
		m, err := matrix.NewDenseColumnMajor(d.Data, d.LD)
		if err != nil {
			return nil, fmt.Errorf("matrixio: data: %w", err)
		}
		return m, nil
	}

	return nil, ErrEmptyDocument
}

// Decode reads one Document from r and returns its matrix.
func Decode(r io.Reader) (*matrix.Dense, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("matrixio: decode: %w", err)
	}

	return doc.Dense()
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes v to w in the given format. v is typically a Document or a
// struct of Documents and Scalars.
func Encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("matrixio: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		buf, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("matrixio: encode json: %w", err)
		}
		_, err = w.Write(append(buf, '\n'))
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// EncodeMatrix is shorthand for Encode(w, FromMatrix(m), format).
func EncodeMatrix(w io.Writer, m *matrix.Dense, format Format) error {
	return Encode(w, FromMatrix(m), format)
}
