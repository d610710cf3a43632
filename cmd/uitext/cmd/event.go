package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/uitext/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "event",
		Short: "Decode a native text view event",
		Long: `Decode a native event payload and print the application-level event.

The kind is topMenuAction or topTextLayout (menuAction and textLayout are
accepted too). The payload is the JSON the native view emits, including
its target; it is validated before decoding.`,
		Usage: "uitext event <kind> <json>",
		Run:   runEvent,
	})
}

func eventKind(name string) platform.EventKind {
	switch strings.ToLower(name) {
	case "menuaction", "topmenuaction":
		return platform.EventMenuAction
	case "textlayout", "toptextlayout":
		return platform.EventTextLayout
	}
	return platform.EventKind(name)
}

func runEvent(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("event requires a kind and a JSON payload")
	}
	kind := eventKind(args[0])

	data := []byte(args[1])

	// The view that would have emitted the event is mounted under the
	// payload's own target so the event routes like a live one. Decode
	// failures surface from HandleEvent, which reports them.
	reg := platform.NewTextViewRegistry()
	if target, _, err := platform.DecodeEvent(kind, data); err == nil {
		fmt.Fprintf(stdout, "target %d\n", target)
		reg.MountWithTarget(target, platform.NativeProps{}, platform.EventHandlers{
			OnMenuAction: func(e platform.MenuActionEvent) {
				fmt.Fprintf(stdout, "menu action %q selected %q [%d, %d)\n", e.ID, e.SelectedText, e.RangeStart, e.RangeEnd)
			},
			OnTextLayout: func(e platform.TextLayoutEvent) {
				fmt.Fprintf(stdout, "text layout, %d lines\n", len(e.Lines))
				for i, line := range e.Lines {
					fmt.Fprintf(stdout, "  %d: %q\n", i+1, line)
				}
			},
		})
	}
	return reg.HandleEvent(kind, data)
}
