package enum

import (
	"bytes"
	"encoding/json"
)

// DiscountType represents how a discount is applied to the working sale.
// The zero value means no discount and serializes as JSON null to stay
// compatible with documents written by earlier versions of the terminal.
type DiscountType string

const (
	DiscountTypeNone       DiscountType = ""
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

func (t DiscountType) String() string {
	if t == DiscountTypeNone {
		return "none"
	}
	return string(t)
}

// Valid reports whether the type is one of the known discount types.
func (t DiscountType) Valid() bool {
	return t == DiscountTypeNone || t == DiscountTypePercentage || t == DiscountTypeFixed
}

func (t DiscountType) MarshalJSON() ([]byte, error) {
	if t == DiscountTypeNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

func (t *DiscountType) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*t = DiscountTypeNone
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "percentage":
		*t = DiscountTypePercentage
	case "fixed":
		*t = DiscountTypeFixed
	default:
		*t = DiscountTypeNone
	}
	return nil
}
