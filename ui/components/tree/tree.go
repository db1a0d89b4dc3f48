// SPDX-License-Identifier: Apache-2.0
// Copyright © 2026 Eldara Tech

// Package tree is a collapsible, searchable outline of a decoded YAML or
// JSON document.
package tree

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Node struct {
	Key      string
	Value    string
	Children []*Node
	Parent   *Node
	Depth    int
	Expanded bool

	// Matches is set on a search hit and on every ancestor of one.
	Matches bool
	hit     bool
}

func (n *Node) Leaf() bool { return len(n.Children) == 0 }

// Path is the dotted key path from the root, root excluded.
func (n *Node) Path() string {
	var parts []string
	for x := n; x != nil && x.Parent != nil; x = x.Parent {
		parts = append(parts, x.Key)
	}
	slices.Reverse(parts)
	return strings.Join(parts, ".")
}

// Build turns a decoded document (maps, slices and scalars) into a tree.
// Map keys are sorted so the outline is stable between renders.
func Build(rootKey string, data any) *Node {
	root := &Node{Key: rootKey, Expanded: true}
	buildChildren(root, data, 0)
	return root
}

func buildChildren(n *Node, data any, depth int) {
	n.Depth = depth
	switch v := data.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			child := &Node{Key: k, Parent: n}
			buildChildren(child, v[k], depth+1)
			n.Children = append(n.Children, child)
		}
	case []any:
		for i, val := range v {
			child := &Node{Key: fmt.Sprintf("[%d]", i), Parent: n}
			buildChildren(child, val, depth+1)
			n.Children = append(n.Children, child)
		}
	case nil:
		n.Value = "~"
	default:
		n.Value = fmt.Sprintf("%v", v)
	}
}

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

type Model struct {
	root    *Node
	visible []*Node
	cursor  int

	term      string
	searching bool
}

func New(root *Node) *Model {
	m := &Model{root: root}
	m.rebuildVisible()
	return m
}

func (m *Model) Cursor() int      { return m.cursor }
func (m *Model) Visible() []*Node { return m.visible }
func (m *Model) Term() string     { return m.term }
func (m *Model) Searching() bool  { return m.searching }

func (m *Model) Selected() *Node {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// ExpandAll opens every node down to depth levels below the root.
func (m *Model) ExpandAll(depth int) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Depth < depth {
			n.Expanded = true
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if m.root != nil {
		walk(m.root)
	}
	m.rebuildVisible()
}

// rebuildVisible flattens the tree following the expanded flags, or, with
// a search term, keeps only matches and their ancestors.
func (m *Model) rebuildVisible() {
	m.visible = m.visible[:0]
	if m.root == nil {
		m.cursor = 0
		return
	}
	if m.term == "" {
		m.collectVisible(m.root)
	} else {
		m.markMatches()
		m.collectFiltered(m.root)
		m.cursor = 0
		if i := slices.IndexFunc(m.visible, func(n *Node) bool { return n.hit }); i >= 0 {
			m.cursor = i
		}
	}
	m.cursor = min(m.cursor, max(len(m.visible)-1, 0))
}

func (m *Model) collectVisible(n *Node) {
	m.visible = append(m.visible, n)
	if n.Expanded {
		for _, c := range n.Children {
			m.collectVisible(c)
		}
	}
}

func (m *Model) collectFiltered(n *Node) {
	if !n.Matches {
		return
	}
	m.visible = append(m.visible, n)
	for _, c := range n.Children {
		m.collectFiltered(c)
	}
}

// markMatches flags nodes whose key or value contains the term, and every
// ancestor of such a node, and expands the ancestors.
func (m *Model) markMatches() {
	term := strings.ToLower(m.term)
	var mark func(n *Node) bool
	mark = func(n *Node) bool {
		n.hit = strings.Contains(strings.ToLower(n.Key), term) ||
			n.Value != "" && strings.Contains(strings.ToLower(n.Value), term)
		n.Matches = n.hit
		for _, c := range n.Children {
			if mark(c) {
				n.Matches = true
				n.Expanded = true
			}
		}
		return n.Matches
	}
	mark(m.root)
}

// Search filters the outline to term; an empty term shows everything.
func (m *Model) Search(term string) {
	m.term = term
	m.rebuildVisible()
}

func (m *Model) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *Model) Down() {
	if m.cursor < len(m.visible)-1 {
		m.cursor++
	}
}

// Collapse closes the node under the cursor, or moves to its parent when
// it is already closed.
func (m *Model) Collapse() {
	n := m.Selected()
	if n == nil {
		return
	}
	if n.Expanded && !n.Leaf() {
		n.Expanded = false
		m.rebuildVisible()
		return
	}
	if i := slices.Index(m.visible, n.Parent); i >= 0 {
		m.cursor = i
	}
}

func (m *Model) Expand() {
	if n := m.Selected(); n != nil && !n.Leaf() {
		n.Expanded = true
		m.rebuildVisible()
	}
}

func (m *Model) Toggle() {
	if n := m.Selected(); n != nil && !n.Leaf() {
		n.Expanded = !n.Expanded
		m.rebuildVisible()
	}
}

// HandleKey applies a navigation key and reports whether it was used.
// While searching every key edits the term.
func (m *Model) HandleKey(key string) bool {
	if m.searching {
		switch key {
		case "enter":
			m.searching = false
		case "esc":
			m.searching = false
			m.Search("")
		case "backspace":
			if m.term != "" {
				r := []rune(m.term)
				m.Search(string(r[:len(r)-1]))
			}
		default:
			if len([]rune(key)) == 1 {
				m.Search(m.term + key)
			}
		}
		return true
	}

	switch key {
	case "/":
		m.searching = true
		m.Search("")
	case "up", "k":
		m.Up()
	case "down", "j":
		m.Down()
	case "left", "h":
		m.Collapse()
	case "right", "l":
		m.Expand()
	case " ", "enter":
		m.Toggle()
	default:
		return false
	}
	return true
}

// Render draws the visible nodes, one per line, with the cursor line
// reversed.
func (m *Model) Render() string {
	lines := make([]string, 0, len(m.visible))
	for i, n := range m.visible {
		line := m.renderNode(n)
		if i == m.cursor {
			line = cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderNode(n *Node) string {
	prefix := strings.Repeat("  ", n.Depth)
	key := n.Key
	if m.term != "" && n.hit {
		key = matchStyle.Render(key)
	} else {
		key = keyStyle.Render(key)
	}
	if n.Leaf() {
		return fmt.Sprintf("%s  %s: %s", prefix, key, n.Value)
	}
	symbol := "▶"
	if n.Expanded {
		symbol = "▼"
	}
	return fmt.Sprintf("%s%s %s", prefix, symbol, key)
}
