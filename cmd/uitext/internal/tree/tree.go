// Package tree reads text tree descriptions for the uitext CLI and prints
// composed render trees.
//
// A description is a YAML document:
//
//	platform:
//	  os: ios
//	  version: "17.0"
//	root:
//	  selectable: true
//	  uiTextView: true
//	  style: {fontSize: 16}
//	  highlightRanges: [{start: 0, end: 5}]
//	  children:
//	    - "Hello "
//	    - 42
//	    - text:
//	        style: {fontWeight: bold}
//	        children: [world]
//	    - element: Image
//
// Children are strings, numbers, nested lists, `text:` nodes (nested
// selectable text), or `element:` nodes (opaque host elements). Booleans and
// nulls are kept and dropped later by segmentation, as they would be in an
// application tree. A style is a mapping or a list of mappings, later
// entries winning.
package tree

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/uitext/pkg/platform"
	"github.com/go-drift/uitext/pkg/style"
	"github.com/go-drift/uitext/pkg/text"
)

// Document is a parsed description.
type Document struct {
	Platform platform.Platform
	Root     text.Props
}

// HostElement stands in for a structured host element in a description.
type HostElement struct {
	Type string
}

func (e HostElement) ElementType() string { return e.Type }

type documentSpec struct {
	Platform struct {
		OS      string `yaml:"os"`
		Version string `yaml:"version"`
	} `yaml:"platform"`
	Root nodeSpec `yaml:"root"`
}

type nodeSpec struct {
	Selectable       bool                      `yaml:"selectable"`
	UITextView       bool                      `yaml:"uiTextView"`
	NumberOfLines    int                       `yaml:"numberOfLines"`
	AllowFontScaling *bool                     `yaml:"allowFontScaling"`
	EllipsizeMode    string                    `yaml:"ellipsizeMode"`
	Style            yaml.Node                 `yaml:"style"`
	MenuItems        []menuItemSpec            `yaml:"menuItems"`
	MenuBehavior     string                    `yaml:"menuBehavior"`
	HighlightRanges  []platform.HighlightRange `yaml:"highlightRanges"`
	TestID           string                    `yaml:"testID"`
	Children         []*yaml.Node              `yaml:"children"`
}

type menuItemSpec struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// ReadFile parses the description at path.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tree: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML description.
func Parse(data []byte) (*Document, error) {
	var spec documentSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	root, err := spec.Root.props()
	if err != nil {
		return nil, err
	}
	doc := &Document{
		Platform: platform.Platform{OS: spec.Platform.OS, Version: spec.Platform.Version},
		Root:     root,
	}
	if doc.Platform.OS == "" {
		doc.Platform.OS = "ios"
	}
	return doc, nil
}

func (n nodeSpec) props() (text.Props, error) {
	ellipsize := platform.EllipsizeMode(n.EllipsizeMode)
	if !ellipsize.Valid() {
		return text.Props{}, fmt.Errorf("unknown ellipsizeMode %q", n.EllipsizeMode)
	}
	behavior := platform.MenuBehavior(n.MenuBehavior)
	if !behavior.Valid() {
		return text.Props{}, fmt.Errorf("unknown menuBehavior %q", n.MenuBehavior)
	}
	var items []platform.MenuItem
	for _, item := range n.MenuItems {
		items = append(items, platform.MenuItem{ID: item.ID, Title: item.Title})
	}
	st, err := parseStyle(&n.Style)
	if err != nil {
		return text.Props{}, err
	}
	children, err := parseChildren(n.Children)
	if err != nil {
		return text.Props{}, err
	}
	return text.Props{
		Children:         children,
		Style:            st,
		NumberOfLines:    n.NumberOfLines,
		AllowFontScaling: n.AllowFontScaling,
		EllipsizeMode:    ellipsize,
		Selectable:       n.Selectable,
		UITextView:       n.UITextView,
		MenuItems:        items,
		MenuBehavior:     behavior,
		HighlightRanges:  n.HighlightRanges,
		View:             platform.ViewProps{TestID: n.TestID},
	}, nil
}

// parseStyle accepts a single style mapping or a list of them, flattened
// left to right.
func parseStyle(node *yaml.Node) (style.Style, error) {
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		var s style.Style
		if err := node.Decode(&s); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return s, nil
	case yaml.SequenceNode:
		var list []style.Style
		if err := node.Decode(&list); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		return style.Flatten(list...), nil
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("line %d: style must be a mapping or a list of mappings", node.Line)
}

func parseChildren(nodes []*yaml.Node) ([]any, error) {
	out := make([]any, 0, len(nodes))
	for _, node := range nodes {
		child, err := parseChild(node)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}
	return out, nil
}

func parseChild(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return parseScalar(node)
	case yaml.SequenceNode:
		return parseChildren(node.Content)
	case yaml.MappingNode:
		var m struct {
			Text    *nodeSpec `yaml:"text"`
			Element string    `yaml:"element"`
		}
		if err := node.Decode(&m); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		switch {
		case m.Text != nil:
			props, err := m.Text.props()
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", node.Line, err)
			}
			return text.View{Props: props}, nil
		case m.Element != "":
			return HostElement{Type: m.Element}, nil
		}
		return nil, fmt.Errorf("line %d: child mapping needs a text or element key", node.Line)
	case yaml.AliasNode:
		return parseChild(node.Alias)
	default:
		return nil, fmt.Errorf("line %d: unsupported child", node.Line)
	}
}

func parseScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		err := node.Decode(&b)
		return b, err
	case "!!int":
		var i int64
		err := node.Decode(&i)
		return i, err
	case "!!float":
		var f float64
		err := node.Decode(&f)
		return f, err
	default:
		return node.Value, nil
	}
}
