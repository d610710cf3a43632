package text

import (
	"reflect"
	"testing"

	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
)

func TestToNativePropsDefaults(t *testing.T) {
	got := ToNativeProps(Props{Selectable: true, UITextView: true}, nil, StandardDefaults())
	if !got.AllowFontScaling {
		t.Error("AllowFontScaling should default to true")
	}
	if got.EllipsizeMode != platform.EllipsizeTail {
		t.Errorf("EllipsizeMode = %q, want tail", got.EllipsizeMode)
	}
	if got.MenuBehavior != platform.MenuBehaviorAugment {
		t.Errorf("MenuBehavior = %q, want augment", got.MenuBehavior)
	}
	if got.HighlightRanges == nil || len(got.HighlightRanges) != 0 {
		t.Errorf("HighlightRanges = %#v, want empty non-nil", got.HighlightRanges)
	}
	if !got.Selectable {
		t.Error("native root must be selectable")
	}
}

func TestToNativePropsExplicitValues(t *testing.T) {
	merged := style.Style{"color": "red"}
	items := []platform.MenuItem{{ID: "a", Title: "A"}, {ID: "a", Title: "Duplicate"}}
	props := Props{
		NumberOfLines:    2,
		AllowFontScaling: Bool(false),
		EllipsizeMode:    platform.EllipsizeHead,
		MenuItems:        items,
		MenuBehavior:     platform.MenuBehaviorReplace,
		View:             platform.ViewProps{AccessibilityLabel: "quote"},
	}
	got := ToNativeProps(props, merged, StandardDefaults())

	if got.NumberOfLines != 2 || got.AllowFontScaling || got.EllipsizeMode != platform.EllipsizeHead {
		t.Errorf("layout props = %+v", got)
	}
	if !reflect.DeepEqual(got.MenuItems, items) || got.MenuBehavior != platform.MenuBehaviorReplace {
		t.Errorf("menu props = %+v", got)
	}
	if !style.Same(got.Style, merged) {
		t.Error("merged style should be forwarded as-is")
	}
	if got.View.AccessibilityLabel != "quote" {
		t.Errorf("view props = %+v", got.View)
	}
}

func TestToNativePropsConfiguredDefaults(t *testing.T) {
	d := Defaults{AllowFontScaling: false, EllipsizeMode: platform.EllipsizeClip, MenuBehavior: platform.MenuBehaviorReplace}
	got := ToNativeProps(Props{}, nil, d)
	if got.AllowFontScaling || got.EllipsizeMode != platform.EllipsizeClip || got.MenuBehavior != platform.MenuBehaviorReplace {
		t.Errorf("configured defaults not applied: %+v", got)
	}
}

// Ranges pass through in order, overlaps and all.
func TestToNativePropsHighlightRangesUnchanged(t *testing.T) {
	inputs := [][]platform.HighlightRange{
		{},
		{{Start: 0, End: 0}},
		{{Start: 10, End: 20}, {Start: 0, End: 5}},
		{{Start: 0, End: 8}, {Start: 4, End: 12}, {Start: 4, End: 12}, {Start: 2, End: 3}},
		{{Start: 50, End: 9999}},
	}
	for _, ranges := range inputs {
		in := append([]platform.HighlightRange(nil), ranges...)
		got := ToNativeProps(Props{HighlightRanges: in}, nil, StandardDefaults())
		if !reflect.DeepEqual(got.HighlightRanges, ranges) {
			t.Errorf("HighlightRanges = %v, want %v", got.HighlightRanges, ranges)
		}
		params := got.Params()["highlightRanges"]
		if !reflect.DeepEqual(params, ranges) {
			t.Errorf("wire highlightRanges = %v, want %v", params, ranges)
		}
	}
}

func TestHandlersOfDropsPressHandlers(t *testing.T) {
	var layouts int
	props := Props{
		OnTextLayout: func(platform.TextLayoutEvent) { layouts++ },
		OnPress:      func() { t.Error("press handler must not reach the native root") },
		OnLongPress:  func() { t.Error("long press handler must not reach the native root") },
	}
	h := HandlersOf(props)
	if h.OnMenuAction != nil {
		t.Error("unset OnMenuAction should stay nil")
	}
	platform.Deliver(h, platform.TextLayoutEvent{Lines: []string{"x"}})
	if layouts != 1 {
		t.Errorf("layouts = %d, want 1", layouts)
	}
}

func TestMountAndDeliverMenuAction(t *testing.T) {
	reg := platform.NewTextViewRegistry()
	c := NewComposer(StandardDefaults())

	var got []platform.MenuActionEvent
	props := selectable("hi there")
	props.MenuItems = []platform.MenuItem{{ID: "copy", Title: "Copy"}}
	props.OnMenuAction = func(ev platform.MenuActionEvent) { got = append(got, ev) }

	targets := Mount(reg, c.Compose(View{Props: props}))
	if len(targets) != 1 {
		t.Fatalf("targets = %v, want one", targets)
	}

	payload, err := platform.DefaultCodec.Encode(map[string]any{
		"id": "copy", "selectedText": "hi", "rangeStart": 0, "rangeEnd": 2, "target": targets[0],
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := reg.HandleEvent(platform.EventMenuAction, payload); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	want := []platform.MenuActionEvent{{ID: "copy", SelectedText: "hi", RangeStart: 0, RangeEnd: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OnMenuAction got %+v, want %+v", got, want)
	}
}

func TestMountPlainTreeRegistersNothing(t *testing.T) {
	reg := platform.NewTextViewRegistry()
	if targets := Mount(reg, PlainText{}); len(targets) != 0 {
		t.Errorf("targets = %v", targets)
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d", reg.Len())
	}
}
