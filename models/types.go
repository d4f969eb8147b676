package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is stored as a JSON array in a text column. Malformed or empty
// stored values decode to an empty list instead of surfacing a parse error.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	*l = StringList{}
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}

	if len(raw) == 0 {
		return nil
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		// legacy rows may hold arbitrary text; treat as empty
		return nil
	}
	*l = out
	return nil
}

// PriceOption is one bookable duration/price pair on a treatment.
type PriceOption struct {
	Duration string  `json:"duration"`
	Price    float64 `json:"price"`
}

// PriceList is stored as a JSON array in a text column, with the same
// parse-or-empty behavior as StringList.
type PriceList []PriceOption

func (p PriceList) Value() (driver.Value, error) {
	if p == nil {
		p = PriceList{}
	}
	return json.Marshal(p)
}

func (p *PriceList) Scan(value interface{}) error {
	*p = PriceList{}
	if value == nil {
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for PriceList", value)
	}

	if len(raw) == 0 {
		return nil
	}

	var out []PriceOption
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	*p = out
	return nil
}
