package tree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/text"
)

const sampleTree = `
platform:
  os: ios
  version: "17.0"
root:
  selectable: true
  uiTextView: true
  numberOfLines: 2
  style: {fontSize: 16}
  menuItems:
    - {id: define, title: Define}
  menuBehavior: replace
  highlightRanges:
    - {start: 0, end: 5}
  children:
    - "Hello "
    - 42
    - 1.5
    - true
    - null
    - [a, b]
    - text:
        style: {fontWeight: bold}
        children: [world]
    - element: Image
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleTree))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Platform != (platform.Platform{OS: "ios", Version: "17.0"}) {
		t.Errorf("Platform = %v", doc.Platform)
	}

	root := doc.Root
	if !root.Selectable || !root.UITextView {
		t.Error("root should be selectable and opt in to the native view")
	}
	if root.NumberOfLines != 2 {
		t.Errorf("NumberOfLines = %d, want 2", root.NumberOfLines)
	}
	if root.Style["fontSize"] != 16 {
		t.Errorf("Style = %v", root.Style)
	}
	if len(root.MenuItems) != 1 || root.MenuItems[0] != (platform.MenuItem{ID: "define", Title: "Define"}) {
		t.Errorf("MenuItems = %v", root.MenuItems)
	}
	if root.MenuBehavior != platform.MenuBehaviorReplace {
		t.Errorf("MenuBehavior = %q", root.MenuBehavior)
	}
	if len(root.HighlightRanges) != 1 || root.HighlightRanges[0] != (platform.HighlightRange{Start: 0, End: 5}) {
		t.Errorf("HighlightRanges = %v", root.HighlightRanges)
	}

	children := root.Children
	if len(children) != 8 {
		t.Fatalf("len(Children) = %d, want 8", len(children))
	}
	if children[0] != "Hello " {
		t.Errorf("children[0] = %#v", children[0])
	}
	if children[1] != int64(42) {
		t.Errorf("children[1] = %#v, want int64(42)", children[1])
	}
	if children[2] != 1.5 {
		t.Errorf("children[2] = %#v, want 1.5", children[2])
	}
	if children[3] != true {
		t.Errorf("children[3] = %#v, want true", children[3])
	}
	if children[4] != nil {
		t.Errorf("children[4] = %#v, want nil", children[4])
	}
	if nested, ok := children[5].([]any); !ok || len(nested) != 2 || nested[0] != "a" {
		t.Errorf("children[5] = %#v, want [a b]", children[5])
	}
	view, ok := children[6].(text.View)
	if !ok {
		t.Fatalf("children[6] = %T, want text.View", children[6])
	}
	if view.Props.Style["fontWeight"] != "bold" || len(view.Props.Children) != 1 {
		t.Errorf("nested view props = %+v", view.Props)
	}
	if el, ok := children[7].(HostElement); !ok || el.ElementType() != "Image" {
		t.Errorf("children[7] = %#v, want Image element", children[7])
	}
}

func TestParseStyleList(t *testing.T) {
	doc, err := Parse([]byte(`
root:
  style:
    - {color: black, fontSize: 12}
    - null
    - {fontSize: 14}
  children:
    - text:
        style: {color: red}
        children:
          - [x, [y]]
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	st := doc.Root.Style
	if st["color"] != "black" || st["fontSize"] != 14 || len(st) != 2 {
		t.Errorf("Style = %v, want color black and fontSize 14", st)
	}
	nested := doc.Root.Children[0].(text.View)
	inner, ok := nested.Props.Children[0].([]any)
	if !ok || len(inner) != 2 || inner[0] != "x" {
		t.Fatalf("nested children = %#v", nested.Props.Children)
	}
	if deeper, ok := inner[1].([]any); !ok || deeper[0] != "y" {
		t.Errorf("deeper children = %#v", inner[1])
	}
}

func TestParseDefaultsToIOS(t *testing.T) {
	doc, err := Parse([]byte("root:\n  children: [hi]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if doc.Platform.OS != "ios" {
		t.Errorf("OS = %q, want ios", doc.Platform.OS)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid yaml", "root: [unclosed"},
		{"bad ellipsize", "root:\n  ellipsizeMode: sideways\n"},
		{"bad menu behavior", "root:\n  menuBehavior: merge\n"},
		{"unknown mapping child", "root:\n  children:\n    - {color: red}\n"},
		{"bad nested node", "root:\n  children:\n    - text: {ellipsizeMode: nope}\n"},
		{"scalar style", "root:\n  style: bold\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(sampleTree), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(doc.Root.Children) != 8 {
		t.Errorf("len(Children) = %d", len(doc.Root.Children))
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
