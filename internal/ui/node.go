package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS
// matching, bounds, and optional text.
type Node struct {
	Class  string // space-separated, e.g. "row slider" for .row and .slider
	ID     string
	Bounds rl.Rectangle
	Text   string
}

// NewNode creates a node with class, id and text.
func NewNode(class, id, text string) *Node {
	return &Node{Class: class, ID: id, Text: text}
}

// At sets the node's bounds and returns it.
func (n *Node) At(x, y, w, h float32) *Node {
	n.Bounds = rl.Rectangle{X: x, Y: y, Width: w, Height: h}
	return n
}
