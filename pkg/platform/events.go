package platform

import (
	"fmt"

	"github.com/go-drift/uitext/pkg/errors"
)

// EventKind names a bubbling event emitted by the native text view.
type EventKind string

const (
	// EventMenuAction fires when a custom context-menu item is chosen.
	EventMenuAction EventKind = "topMenuAction"
	// EventTextLayout fires after the native view lays out its text.
	EventTextLayout EventKind = "topTextLayout"
)

// MenuActionEvent reports which menu item fired and the selection at the
// time it fired.
type MenuActionEvent struct {
	ID           string
	SelectedText string
	RangeStart   int
	RangeEnd     int
}

// TextLayoutEvent lists the rendered visual lines, top to bottom.
type TextLayoutEvent struct {
	Lines []string
}

// Event is an application-level event decoded from the native view; it is
// either a MenuActionEvent or a TextLayoutEvent.
type Event interface {
	Kind() EventKind
}

func (MenuActionEvent) Kind() EventKind { return EventMenuAction }
func (TextLayoutEvent) Kind() EventKind { return EventTextLayout }

// nativeMenuActionEvent is the wire shape of EventMenuAction.
type nativeMenuActionEvent struct {
	Target       int32  `json:"target"`
	ID           string `json:"id"`
	SelectedText string `json:"selectedText"`
	RangeStart   int32  `json:"rangeStart"`
	RangeEnd     int32  `json:"rangeEnd"`
}

// nativeTextLayoutEvent is the wire shape of EventTextLayout.
type nativeTextLayoutEvent struct {
	Target int32    `json:"target"`
	Lines  []string `json:"lines"`
}

// DecodeEvent translates a native event payload into its application event.
// The returned target identifies the native view that emitted it; it is used
// for routing only and is not part of the application event.
func DecodeEvent(kind EventKind, data []byte) (target int32, event Event, err error) {
	raw, err := DefaultCodec.Decode(data)
	if err != nil {
		return 0, nil, &errors.ParseError{Channel: string(kind), DataType: "json", Got: string(data)}
	}
	if err := validatePayload(kind, raw); err != nil {
		return 0, nil, err
	}

	switch kind {
	case EventMenuAction:
		var ev nativeMenuActionEvent
		if err := DefaultCodec.DecodeInto(data, &ev); err != nil {
			return 0, nil, &errors.ParseError{Channel: string(kind), DataType: "MenuActionEvent", Got: raw}
		}
		return ev.Target, MenuActionEvent{
			ID:           ev.ID,
			SelectedText: ev.SelectedText,
			RangeStart:   int(ev.RangeStart),
			RangeEnd:     int(ev.RangeEnd),
		}, nil
	case EventTextLayout:
		var ev nativeTextLayoutEvent
		if err := DefaultCodec.DecodeInto(data, &ev); err != nil {
			return 0, nil, &errors.ParseError{Channel: string(kind), DataType: "TextLayoutEvent", Got: raw}
		}
		lines := ev.Lines
		if lines == nil {
			lines = []string{}
		}
		return ev.Target, TextLayoutEvent{Lines: lines}, nil
	default:
		return 0, nil, fmt.Errorf("%w: %s", ErrUnknownEventKind, kind)
	}
}
