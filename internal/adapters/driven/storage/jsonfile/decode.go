package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

// Entry field names. Matching is exact.
const (
	fieldDescription = "description"
	fieldParams      = "params"
	fieldReturn      = "return"
)

// jsonNull is the raw form of an explicit null.
var jsonNull = json.RawMessage(`null`)

// decodeObject walks a top-level JSON object in document order, handing each
// member to fn. Anything other than exactly one UTF-8 encoded object is
// malformed.
func decodeObject(data []byte, fn func(key string, value json.RawMessage) error) error {
	if !utf8.Valid(data) {
		return fmt.Errorf("%w: source is not valid UTF-8", domain.ErrMalformedInput)
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", domain.ErrMalformedInput)
		}
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: top level is %s, want object", domain.ErrMalformedInput, describeToken(tok))
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected %v", domain.ErrMalformedInput, tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("%w: entry %q: %w", domain.ErrMalformedInput, key, err)
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}

	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedInput, err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after top-level object", domain.ErrMalformedInput)
	}
	return nil
}

// decodeEntry parses one dataset value. It must be an object; unknown
// fields are ignored and absent fields are left nil.
func decodeEntry(key string, value json.RawMessage) (domain.ReferenceEntry, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.ReferenceEntry{}, fmt.Errorf(
			"%w: entry %q is %s, want object", domain.ErrMalformedInput, key, describeRaw(trimmed))
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return domain.ReferenceEntry{}, fmt.Errorf("%w: entry %q: %w", domain.ErrMalformedInput, key, err)
	}

	var entry domain.ReferenceEntry
	if raw, ok := fields[fieldDescription]; ok {
		// A null description reads as empty.
		if err := json.Unmarshal(raw, &entry.Description); err != nil {
			return domain.ReferenceEntry{}, fmt.Errorf(
				"%w: entry %q: description is %s, want string", domain.ErrMalformedInput, key, describeRaw(raw))
		}
	}
	entry.Params = presentField(fields, fieldParams)
	entry.Return = presentField(fields, fieldReturn)
	return entry, nil
}

// presentField returns the raw field, nil if absent, or null if explicitly null.
func presentField(fields map[string]json.RawMessage, name string) json.RawMessage {
	raw, ok := fields[name]
	if !ok {
		return nil
	}
	if raw == nil {
		return jsonNull
	}
	return raw
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "an array"
		}
		return fmt.Sprintf("%q", v.String())
	case string:
		return "a string"
	case float64, json.Number:
		return "a number"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func describeRaw(raw []byte) string {
	if len(raw) == 0 {
		return "empty"
	}
	switch raw[0] {
	case '[':
		return "an array"
	case '{':
		return "an object"
	case '"':
		return "a string"
	case 't', 'f':
		return "a boolean"
	case 'n':
		return "null"
	default:
		return "a number"
	}
}
