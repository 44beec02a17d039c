package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is a price in VND. The old mock store returned prices both as
// numbers and as numeric strings, so decoding accepts either form.
type Money float64

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(m))
}

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*m = 0
		return nil
	}

	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid price value %q", s)
	}

	*m = Money(v)
	return nil
}
