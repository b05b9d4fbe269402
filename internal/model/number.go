package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WholeNumber is an integer field that also accepts integral floats (2018.0)
// and numeric strings ("2018"). Fractions and non-numeric text are rejected.
type WholeNumber int

func (n *WholeNumber) UnmarshalJSON(data []byte) error {
	raw := bytes.TrimSpace(data)
	text := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("invalid integer %s", text)
		}
		text = strings.TrimSpace(unquoted)
	}

	if v, err := strconv.Atoi(text); err == nil {
		*n = WholeNumber(v)
		return nil
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return fmt.Errorf("invalid integer %s", string(raw))
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("integer expected, got fractional number %s", string(raw))
	}
	if f < -(1<<63) || f >= 1<<63 {
		return fmt.Errorf("integer out of range: %s", string(raw))
	}
	*n = WholeNumber(f)
	return nil
}

func (n WholeNumber) Int() int {
	return int(n)
}
