package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SelectionKind tells how a request chose its providers
type SelectionKind int

const (
	SelectionUnset SelectionKind = iota
	SelectionOne
	SelectionMany
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionOne:
		return "one"
	case SelectionMany:
		return "many"
	}
	return "unset"
}

// ProviderSelection is the "provider" field of a send request: absent,
// a single provider name, or an ordered list of names.
type ProviderSelection struct {
	kind  SelectionKind
	names []string
}

// SelectOne selects a single provider
func SelectOne(name string) ProviderSelection {
	return ProviderSelection{kind: SelectionOne, names: []string{name}}
}

// SelectMany selects an ordered list of providers
func SelectMany(names ...string) ProviderSelection {
	return ProviderSelection{kind: SelectionMany, names: copyNames(names)}
}

func (s ProviderSelection) Kind() SelectionKind {
	return s.kind
}

func (s ProviderSelection) IsSet() bool {
	return s.kind != SelectionUnset
}

// Names returns a copy of the selected provider names in request order
func (s ProviderSelection) Names() []string {
	return copyNames(s.names)
}

func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func (s ProviderSelection) String() string {
	switch s.kind {
	case SelectionOne:
		return s.names[0]
	case SelectionMany:
		return "[" + strings.Join(s.names, ",") + "]"
	}
	return "<default>"
}

// UnmarshalJSON accepts null, a string or an array of strings
func (s *ProviderSelection) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ProviderSelection{}
		return nil
	}

	switch data[0] {
	case '"':
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return NewValidationError("provider", "invalid provider name")
		}
		*s = SelectOne(name)
		return nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return NewValidationError("provider", "provider list must contain only strings")
		}
		names := make([]string, 0, len(items))
		for _, item := range items {
			// null would otherwise decode to ""
			var name string
			if len(item) == 0 || item[0] != '"' || json.Unmarshal(item, &name) != nil {
				return NewValidationError("provider", "provider list must contain only strings")
			}
			names = append(names, name)
		}
		*s = SelectMany(names...)
		return nil
	}

	return NewValidationError("provider", "provider must be a string or a list of strings")
}

// MarshalJSON mirrors UnmarshalJSON
func (s ProviderSelection) MarshalJSON() ([]byte, error) {
	switch s.kind {
	case SelectionOne:
		return json.Marshal(s.names[0])
	case SelectionMany:
		return json.Marshal(copyNames(s.names))
	}
	return []byte("null"), nil
}
