// Package platform bridges the selectable text composition layer to the
// native text view ("RNUITextView").
//
// Outbound, it defines the wire shapes the native view consumes (menu items,
// highlight ranges, layout props). Inbound, it decodes menu-action and
// text-layout events delivered by the native view, validates them against the
// wire schema, strips the routing target, and invokes the application handler
// registered for that target.
package platform

import (
	"encoding/json"
	"errors"
)

// MessageCodec encodes and decodes messages crossing the native boundary.
type MessageCodec interface {
	// Encode converts a Go value to bytes for transmission to native code.
	Encode(value any) ([]byte, error)

	// Decode converts bytes received from native code to a Go value.
	Decode(data []byte) (any, error)
}

// JsonCodec implements MessageCodec using JSON encoding.
type JsonCodec struct{}

// Encode serializes the value to JSON bytes.
func (c JsonCodec) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}

// Decode deserializes JSON bytes to a Go value.
func (c JsonCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DecodeInto deserializes JSON bytes into a specific type.
func (c JsonCodec) DecodeInto(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// DefaultCodec is the codec used for native payloads.
var DefaultCodec = JsonCodec{}

// Standard errors for bridge operations.
var (
	// ErrUnknownEventKind indicates the native view sent an event this layer
	// does not translate.
	ErrUnknownEventKind = errors.New("unknown native event kind")

	// ErrInvalidPayload indicates an event payload failed schema validation.
	ErrInvalidPayload = errors.New("invalid native event payload")

	// ErrTargetNotFound indicates no mounted text view owns the event target.
	ErrTargetNotFound = errors.New("native text view target not registered")
)
