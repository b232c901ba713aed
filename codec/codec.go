// Package codec centralizes multivector serialization.
//
// The wire shape is the stable multivector dump {dim, coefficients}
// defined by the clifgo root package; a Codec only chooses the JSON
// engine producing those bytes. Callers that persist dumps should
// record the codec Name alongside them and reselect it with ByName
// when reading.
package codec

import (
	"fmt"

	"github.com/hupe1980/clifgo"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// Encode serializes x through c, or through Default when c is nil.
func Encode(c Codec, x *clifgo.MultiVector) ([]byte, error) {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("codec %s: marshal multivector: %w", c.Name(), err)
	}
	return b, nil
}

// Decode deserializes a multivector dump produced by Encode. The dump
// is validated against its declared rank.
func Decode(c Codec, data []byte) (*clifgo.MultiVector, error) {
	if c == nil {
		c = Default
	}
	var x clifgo.MultiVector
	if err := c.Unmarshal(data, &x); err != nil {
		return nil, fmt.Errorf("codec %s: unmarshal multivector: %w", c.Name(), err)
	}
	return &x, nil
}
