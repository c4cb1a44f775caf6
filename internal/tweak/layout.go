package tweak

// RowKind says how a panel row is drawn and what a click on it does.
type RowKind int

const (
	RowHeader RowKind = iota
	RowSlider
	RowCheckbox
)

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (px, py) lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(px, py float32) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Row is one laid-out line of the panel. Control is the slider track or checkbox box,
// the part of the row that reacts to the pointer.
type Row struct {
	Kind    RowKind
	Folder  *Folder
	Field   *Field
	Bounds  Rect
	Control Rect
}

// Layout stacks folder headers and, for open folders, their fields from (x, y) downward.
// labelFrac is the share of the width given to field labels.
func (g *GUI) Layout(x, y, width, rowHeight, labelFrac float32) []Row {
	rows := make([]Row, 0, len(g.fields)+len(g.folders))
	labelW := width * labelFrac
	pad := rowHeight / 5
	for _, fo := range g.folders {
		b := Rect{X: x, Y: y, W: width, H: rowHeight}
		rows = append(rows, Row{Kind: RowHeader, Folder: fo, Bounds: b, Control: b})
		y += rowHeight
		if !fo.open {
			continue
		}
		for _, f := range fo.fields {
			b := Rect{X: x, Y: y, W: width, H: rowHeight}
			r := Row{Kind: RowSlider, Folder: fo, Field: f, Bounds: b}
			if f.IsBool {
				side := rowHeight - 2*pad
				r.Kind = RowCheckbox
				r.Control = Rect{X: x + labelW, Y: y + pad, W: side, H: side}
			} else {
				r.Control = Rect{X: x + labelW, Y: y + pad, W: width - labelW - pad, H: rowHeight - 2*pad}
			}
			rows = append(rows, r)
			y += rowHeight
		}
	}
	return rows
}

// Hit returns the index of the row whose bounds contain (px, py), or -1.
func Hit(rows []Row, px, py float32) int {
	for i, r := range rows {
		if r.Bounds.Contains(px, py) {
			return i
		}
	}
	return -1
}

// FractionAt maps a pointer x over a slider track to [0, 1].
func (r Row) FractionAt(px float32) float32 {
	if r.Control.W <= 0 {
		return 0
	}
	f := (px - r.Control.X) / r.Control.W
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Press applies a pointer press at (px, py): headers open or close their folder,
// checkboxes toggle and slider tracks jump to the pointer. It returns the field a
// drag should keep editing, or nil.
func (g *GUI) Press(rows []Row, px, py float32) (*Field, error) {
	i := Hit(rows, px, py)
	if i < 0 {
		return nil, nil
	}
	r := rows[i]
	switch r.Kind {
	case RowHeader:
		if r.Folder.open {
			r.Folder.Close()
		} else {
			r.Folder.Open()
		}
	case RowCheckbox:
		return nil, g.Toggle(r.Field.Key)
	case RowSlider:
		if !r.Control.Contains(px, py) {
			return nil, nil
		}
		_, err := g.SetFraction(r.Field.Key, r.FractionAt(px))
		return r.Field, err
	}
	return nil, nil
}

// Drag continues editing f from a pointer at px, using f's row in rows.
func (g *GUI) Drag(rows []Row, f *Field, px float32) error {
	for _, r := range rows {
		if r.Field == f && r.Kind == RowSlider {
			_, err := g.SetFraction(f.Key, r.FractionAt(px))
			return err
		}
	}
	return nil
}
