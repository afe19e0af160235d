package domain

import "encoding/json"

// Defaults applied to fields missing from a ReferenceEntry.
var (
	// DefaultParams is written when an entry has no params field.
	DefaultParams = json.RawMessage(`[]`)

	// DefaultReturn is written when an entry has no return field.
	DefaultReturn = json.RawMessage(`{}`)
)

// ReferenceEntry is one documented symbol as it appears in the source dataset.
// Params and Return are opaque and kept as raw JSON; nil means the field was absent.
type ReferenceEntry struct {
	// Description is the raw, HTML-bearing description text.
	Description string

	// Params is the ordered parameter list, verbatim.
	Params json.RawMessage

	// Return is the return-type descriptor, verbatim.
	Return json.RawMessage
}

// SlimEntry is the plain-text projection of a ReferenceEntry.
type SlimEntry struct {
	Description string          `json:"description"`
	Params      json.RawMessage `json:"params"`
	Return      json.RawMessage `json:"return"`
}

// Keyed is an insertion-ordered collection of entries keyed by symbol name.
// Setting an existing symbol replaces its entry but keeps its position.
type Keyed[E any] struct {
	keys    []string
	entries map[string]E
}

// Reference is the full source dataset.
type Reference = Keyed[ReferenceEntry]

// SlimReference is the reduced dataset.
type SlimReference = Keyed[SlimEntry]

// NewReference creates an empty source dataset.
func NewReference() *Reference {
	return newKeyed[ReferenceEntry]()
}

// NewSlimReference creates an empty slim dataset.
func NewSlimReference() *SlimReference {
	return newKeyed[SlimEntry]()
}

func newKeyed[E any]() *Keyed[E] {
	return &Keyed[E]{entries: make(map[string]E)}
}

// Set stores an entry under symbol.
func (k *Keyed[E]) Set(symbol string, entry E) {
	if k.entries == nil {
		k.entries = make(map[string]E)
	}
	if _, ok := k.entries[symbol]; !ok {
		k.keys = append(k.keys, symbol)
	}
	k.entries[symbol] = entry
}

// Get returns the entry for symbol.
func (k *Keyed[E]) Get(symbol string) (E, bool) {
	e, ok := k.entries[symbol]
	return e, ok
}

// Keys returns the symbols in insertion order.
func (k *Keyed[E]) Keys() []string {
	keys := make([]string, len(k.keys))
	copy(keys, k.keys)
	return keys
}

// Len returns the number of entries.
func (k *Keyed[E]) Len() int {
	return len(k.keys)
}
