package clifgo

import (
	"encoding/json"
	"fmt"
)

// maxRank bounds the rank accepted when decoding, keeping 1<<dim well
// inside int range and rejecting absurd allocations from bad input.
const maxRank = 30

// multiVectorDump is the stable wire shape of a multivector.
type multiVectorDump struct {
	Dim   int       `json:"dim"`
	Coefs []float64 `json:"coefficients"`
}

// MarshalJSON encodes x as {"dim": n, "coefficients": [...]} with all
// 2^n coefficients present in ascending blade order.
func (x *MultiVector) MarshalJSON() ([]byte, error) {
	return json.Marshal(multiVectorDump{
		Dim:   x.dim,
		Coefs: append([]float64(nil), x.coefs...),
	})
}

// UnmarshalJSON decodes a dump produced by MarshalJSON, validating that
// the coefficient count matches the declared rank.
func (x *MultiVector) UnmarshalJSON(data []byte) error {
	var d multiVectorDump
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	if d.Dim < 0 || d.Dim > maxRank {
		return fmt.Errorf("clifgo: invalid rank %d in multivector dump", d.Dim)
	}
	if len(d.Coefs) != 1<<d.Dim {
		return fmt.Errorf("clifgo: multivector dump of rank %d needs %d coefficients, got %d", d.Dim, 1<<d.Dim, len(d.Coefs))
	}
	x.dim = d.Dim
	x.coefs = d.Coefs
	return nil
}
