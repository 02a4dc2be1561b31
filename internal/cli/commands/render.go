package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlfront/internal/cli/config"
	"github.com/leapstack-labs/sqlfront/pkg/core"
	"github.com/leapstack-labs/sqlfront/pkg/dialect"
	"github.com/leapstack-labs/sqlfront/pkg/format"
)

// NodeView is the serializable shape of an AST node used by the tree, json
// and yaml outputs.
type NodeView struct {
	Type     string         `json:"type" yaml:"type"`
	Location string         `json:"location,omitempty" yaml:"location,omitempty"`
	Attrs    map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []*NodeView    `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewNodeView converts n and its subtree. Scalar fields become attributes,
// sub-nodes become children in rendering order.
func NewNodeView(n core.Node) *NodeView {
	v := reflect.ValueOf(n)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	view := &NodeView{Type: v.Type().Name()}
	if loc, ok := n.Location(); ok {
		view.Location = loc.String()
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fv := v.Field(i)
		// Interfaces, pointers and slices hold sub-nodes.
		switch fv.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice:
			continue
		}
		if s, ok := fv.Interface().(fmt.Stringer); ok {
			view.setAttr(f.Name, s.String())
			continue
		}
		view.setAttr(f.Name, fv.Interface())
	}

	for _, child := range n.Children() {
		view.Children = append(view.Children, NewNodeView(child))
	}
	return view
}

func (v *NodeView) setAttr(name string, value any) {
	if v.Attrs == nil {
		v.Attrs = make(map[string]any)
	}
	v.Attrs[strings.ToLower(name[:1])+name[1:]] = value
}

// label renders the one-line summary used by the tree output.
func (v *NodeView) label(s treeStyles) string {
	var sb strings.Builder
	sb.WriteString(s.render(s.typ, v.Type))
	if v.Location != "" {
		sb.WriteString(" ")
		sb.WriteString(s.render(s.loc, "@"+v.Location))
	}
	keys := make([]string, 0, len(v.Attrs))
	for k := range v.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		val := v.Attrs[k]
		var text string
		if str, ok := val.(string); ok {
			text = fmt.Sprintf("%s=%q", k, str)
		} else {
			text = fmt.Sprintf("%s=%v", k, val)
		}
		sb.WriteString(" ")
		sb.WriteString(s.render(s.attr, text))
	}
	return sb.String()
}

// treeStyles colours tree labels. The zero value renders plain text.
type treeStyles struct {
	enabled bool
	typ     lipgloss.Style
	loc     lipgloss.Style
	attr    lipgloss.Style
}

// newTreeStyles styles labels only when w is a terminal.
func newTreeStyles(w io.Writer) treeStyles {
	if !isTerminal(w) {
		return treeStyles{}
	}
	return stylesFor(lipgloss.NewRenderer(w))
}

func stylesFor(r *lipgloss.Renderer) treeStyles {
	return treeStyles{
		enabled: true,
		typ:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		loc:     r.NewStyle().Faint(true),
		attr:    r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (s treeStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// renderNodes writes nodes in the given output format. d selects identifier
// quoting for the sql format.
func renderNodes(w io.Writer, nodes []core.Node, outputFormat string, d *dialect.Dialect) error {
	switch outputFormat {
	case config.OutputSQL:
		return renderSQL(w, nodes, d)
	case config.OutputJSON:
		return renderJSON(w, views(nodes))
	case config.OutputYAML:
		return renderYAML(w, views(nodes))
	case config.OutputTree:
		return renderTree(w, nodes, newTreeStyles(w))
	default:
		return fmt.Errorf("unknown output format %q", outputFormat)
	}
}

func views(nodes []core.Node) any {
	out := make([]*NodeView, len(nodes))
	for i, n := range nodes {
		out[i] = NewNodeView(n)
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func renderSQL(w io.Writer, nodes []core.Node, d *dialect.Dialect) error {
	for i, n := range nodes {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		text := format.FormatDialect(n, d)
		if _, ok := n.(core.Statement); ok {
			text += ";"
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

func renderTree(w io.Writer, nodes []core.Node, styles treeStyles) error {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	for _, n := range nodes {
		appendTree(l, NewNodeView(n), styles)
	}
	_, err := fmt.Fprintln(w, l.Render())
	return err
}

func appendTree(l list.Writer, v *NodeView, styles treeStyles) {
	l.AppendItem(v.label(styles))
	if len(v.Children) == 0 {
		return
	}
	l.Indent()
	for _, c := range v.Children {
		appendTree(l, c, styles)
	}
	l.UnIndent()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// renderDialects lists the registered dialects as a table.
func renderDialects(w io.Writer, current core.SQLDialect) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"", "Dialect", "Quote", "Keywords", "Description"})
	for _, name := range dialect.List() {
		d, ok := dialect.Get(name)
		if !ok {
			continue
		}
		marker := ""
		if name == current {
			marker = "*"
		}
		t.AppendRow(table.Row{marker, name.String(), string(d.IdentifierQuote), len(d.Keywords()), d.Description})
	}
	t.Render()
}
