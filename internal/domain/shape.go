package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

const opShape = "domain.shape"

var errNotObject = errors.New("expected an object")

// Shape lists the keys a raw domain record must carry. A required key that is
// absent or null is a shape mismatch; decoding it would fill in a zero value.
// Nested applies to object-valued keys and Each to the elements of
// array-valued keys; both are skipped when the key is absent or null.
type Shape struct {
	Required []string
	Nested   map[string]Shape
	Each     map[string]Shape
}

// Shaper is implemented by domain records that declare their required keys.
type Shaper interface {
	Shape() Shape
}

// Check reports the first required key missing from raw, with its field path.
func (s Shape) Check(raw json.RawMessage) error {
	return s.check("", raw)
}

func (s Shape) check(path string, raw json.RawMessage) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return ShapeMismatch(opShape, path, errNotObject)
	}

	for _, key := range s.Required {
		if v, ok := obj[key]; !ok || isNull(v) {
			return ShapeMismatch(opShape, JoinPath(path, key), errRequired)
		}
	}

	for _, key := range sortedKeys(s.Nested) {
		v, ok := obj[key]
		if !ok || isNull(v) {
			continue
		}
		if err := s.Nested[key].check(JoinPath(path, key), v); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(s.Each) {
		v, ok := obj[key]
		if !ok || isNull(v) {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(v, &items); err != nil {
			return ShapeMismatch(opShape, JoinPath(path, key), errors.New("expected an array"))
		}
		for i, item := range items {
			if err := s.Each[key].check(JoinPath(path, fmt.Sprintf("%s[%d]", key, i)), item); err != nil {
				return err
			}
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

func sortedKeys(m map[string]Shape) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
