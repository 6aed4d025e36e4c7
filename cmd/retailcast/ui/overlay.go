package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a cell-addressed screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Locate finds the rendered part inside box and returns its bounds
// relative to box. label is a piece of text part shows once, used to
// line the two up; the first occurrence in box wins.
func Locate(box, part, label string) (Rect, bool) {
	px, py, ok := find(part, label)
	if !ok {
		return Rect{}, false
	}
	bx, by, ok := find(box, label)
	if !ok {
		return Rect{}, false
	}
	return Rect{X: bx - px, Y: by - py, W: lipgloss.Width(part), H: lipgloss.Height(part)}, true
}

// find returns the cell position of the first occurrence of label in s.
func find(s, label string) (x, y int, ok bool) {
	for i, line := range strings.Split(ansi.Strip(s), "\n") {
		if idx := strings.Index(line, label); idx >= 0 {
			return ansi.StringWidth(line[:idx]), i, true
		}
	}
	return 0, 0, false
}

// Overlay centers box on a blank width x height screen and returns the
// frame with the box's bounds, for hit-testing mouse clicks.
func Overlay(width, height int, box string) (string, Rect) {
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	r := Rect{X: max(0, (width-w)/2), Y: max(0, (height-h)/2), W: w, H: h}

	var sb strings.Builder
	sb.WriteString(strings.Repeat("\n", r.Y))
	pad := strings.Repeat(" ", r.X)
	for i, line := range strings.Split(box, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(pad)
		sb.WriteString(line)
	}
	if below := height - r.Y - h; below > 0 {
		sb.WriteString(strings.Repeat("\n", below))
	}
	return sb.String(), r
}
