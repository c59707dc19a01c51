package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseScalar decodes a scalar JSON body into display text. ok is false for
// a JSON null, which leaves the field loading.
func ParseScalar(body []byte) (text string, ok bool, err error) {
	v, err := decode(body)
	if err != nil {
		return "", false, err
	}
	return displayText(v)
}

// ParseField extracts key from a JSON object body. A missing key (or a body
// that is a scalar rather than an object) resolves to an empty value; a null
// body is a shape mismatch.
func ParseField(body []byte, key string) (text string, ok bool, err error) {
	v, err := decode(body)
	if err != nil {
		return "", false, err
	}

	switch obj := v.(type) {
	case nil:
		return "", false, fmt.Errorf("%w: null body, expected object with %q", ErrFetchFailure, key)
	case map[string]any:
		field, found := obj[key]
		if !found {
			return "", true, nil
		}
		return displayText(field)
	default:
		return "", true, nil
	}
}

func decode(body []byte) (any, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: decode body: %v", ErrFetchFailure, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrFetchFailure)
	}
	return v, nil
}

func displayText(v any) (string, bool, error) {
	switch val := v.(type) {
	case nil:
		return "", false, nil
	case json.Number:
		return formatNumber(val)
	case string:
		return val, true, nil
	case bool:
		// booleans render as empty text
		return "", true, nil
	default:
		return "", false, fmt.Errorf("%w: expected scalar, got %T", ErrFetchFailure, v)
	}
}

func formatNumber(n json.Number) (string, bool, error) {
	if i, err := strconv.ParseInt(n.String(), 10, 64); err == nil {
		return strconv.FormatInt(i, 10), true, nil
	}
	f, err := n.Float64()
	if err != nil {
		return "", false, fmt.Errorf("%w: invalid number %q", ErrFetchFailure, n.String())
	}
	return numberText(f), true, nil
}

// numberText renders f the way a browser prints a number: plain decimals,
// switching to exponent form below 1e-6 and from 1e21 up.
func numberText(f float64) string {
	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + exp[:1] + digits
}
