// Package tweak is a live parameter panel model: named numeric and boolean knobs grouped
// in folders, each with a range, a step and change callbacks. Drawing lives in internal/ui.
package tweak

import (
	"errors"
	"fmt"
	"math"

	"grain-scenes/internal/mathx"
)

var (
	ErrUnknownField = errors.New("tweak: unknown field")
	ErrFieldKind    = errors.New("tweak: wrong field kind")
)

// Controller is the flat mapping of knob values the panel edits.
type Controller struct {
	floats map[string]float32
	bools  map[string]bool
	order  []string
}

// NewController returns an empty controller.
func NewController() *Controller {
	return &Controller{floats: make(map[string]float32), bools: make(map[string]bool)}
}

func (c *Controller) remember(key string) {
	_, f := c.floats[key]
	_, b := c.bools[key]
	if !f && !b {
		c.order = append(c.order, key)
	}
}

// Define sets the initial value of a numeric knob.
func (c *Controller) Define(key string, v float32) {
	c.remember(key)
	delete(c.bools, key)
	c.floats[key] = v
}

// DefineBool sets the initial value of a boolean knob.
func (c *Controller) DefineBool(key string, v bool) {
	c.remember(key)
	delete(c.floats, key)
	c.bools[key] = v
}

// Float returns a numeric knob.
func (c *Controller) Float(key string) (float32, bool) {
	v, ok := c.floats[key]
	return v, ok
}

// Bool returns a boolean knob.
func (c *Controller) Bool(key string) (bool, bool) {
	v, ok := c.bools[key]
	return v, ok
}

// Keys returns knob names in definition order.
func (c *Controller) Keys() []string {
	return append([]string(nil), c.order...)
}

// Field is one control on the panel.
type Field struct {
	Key      string
	Folder   string
	IsBool   bool
	Min, Max float32
	step     float32
	ctrl     *Controller
	onChange []func(v float32)
}

// Step sets the snapping increment. Zero disables snapping.
func (f *Field) Step(s float32) *Field {
	if s < 0 {
		s = -s
	}
	f.step = s
	return f
}

// StepSize returns the snapping increment.
func (f *Field) StepSize() float32 {
	return f.step
}

// OnChange registers a callback fired after each change with the stored value
// (1 or 0 for booleans).
func (f *Field) OnChange(fn func(v float32)) *Field {
	f.onChange = append(f.onChange, fn)
	return f
}

// Value is the current numeric value, or 1/0 for a boolean field.
func (f *Field) Value() float32 {
	if f.IsBool {
		if v, _ := f.ctrl.Bool(f.Key); v {
			return 1
		}
		return 0
	}
	v, _ := f.ctrl.Float(f.Key)
	return v
}

// Fraction is the value's position within [Min, Max], for slider drawing.
func (f *Field) Fraction() float32 {
	if f.IsBool || f.Max <= f.Min {
		return f.Value()
	}
	return mathx.Clamp((f.Value()-f.Min)/(f.Max-f.Min), 0, 1)
}

func (f *Field) normalize(v float32) float32 {
	if f.step > 0 {
		v = float32(math.Round(float64(v)/float64(f.step)) * float64(f.step))
	}
	if f.Max > f.Min {
		v = mathx.Clamp(v, f.Min, f.Max)
	}
	return v
}

func (f *Field) fire() {
	v := f.Value()
	for _, fn := range f.onChange {
		fn(v)
	}
}

// Folder groups fields under a heading.
type Folder struct {
	Name   string
	gui    *GUI
	fields []*Field
	open   bool
}

// Add registers a numeric field over [min, max]. A key missing from the controller starts at min.
func (fo *Folder) Add(key string, min, max float32) *Field {
	if _, ok := fo.gui.ctrl.Float(key); !ok {
		fo.gui.ctrl.Define(key, min)
	}
	f := &Field{Key: key, Folder: fo.Name, Min: min, Max: max, ctrl: fo.gui.ctrl}
	fo.attach(f)
	return f
}

// AddBool registers a checkbox. A key missing from the controller starts false.
func (fo *Folder) AddBool(key string) *Field {
	if _, ok := fo.gui.ctrl.Bool(key); !ok {
		fo.gui.ctrl.DefineBool(key, false)
	}
	f := &Field{Key: key, Folder: fo.Name, IsBool: true, Min: 0, Max: 1, ctrl: fo.gui.ctrl}
	fo.attach(f)
	return f
}

func (fo *Folder) attach(f *Field) {
	fo.fields = append(fo.fields, f)
	fo.gui.fields[f.Key] = f
}

// Open expands the folder.
func (fo *Folder) Open() *Folder {
	fo.open = true
	return fo
}

// Close collapses the folder.
func (fo *Folder) Close() *Folder {
	fo.open = false
	return fo
}

// IsOpen reports whether the folder is expanded.
func (fo *Folder) IsOpen() bool {
	return fo.open
}

// Fields returns the folder's fields in registration order.
func (fo *Folder) Fields() []*Field {
	return fo.fields
}

// GUI is the panel: folders of fields editing one controller.
type GUI struct {
	ctrl    *Controller
	folders []*Folder
	fields  map[string]*Field
}

// New returns an empty panel over ctrl.
func New(ctrl *Controller) *GUI {
	return &GUI{ctrl: ctrl, fields: make(map[string]*Field)}
}

// Controller returns the edited values.
func (g *GUI) Controller() *Controller {
	return g.ctrl
}

// AddFolder appends a collapsed folder.
func (g *GUI) AddFolder(name string) *Folder {
	fo := &Folder{Name: name, gui: g}
	g.folders = append(g.folders, fo)
	return fo
}

// Folders returns folders in creation order.
func (g *GUI) Folders() []*Folder {
	return g.folders
}

// Field looks up a registered field.
func (g *GUI) Field(key string) (*Field, bool) {
	f, ok := g.fields[key]
	return f, ok
}

// Set snaps v to the field's step, clamps it to its range, stores it and fires the
// field's callbacks. It returns the stored value.
func (g *GUI) Set(key string, v float32) (float32, error) {
	f, ok := g.fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if f.IsBool {
		return 0, fmt.Errorf("%w: %s is a checkbox", ErrFieldKind, key)
	}
	v = f.normalize(v)
	g.ctrl.floats[key] = v
	f.fire()
	return v, nil
}

// SetFraction sets a numeric field from a slider position in [0, 1].
func (g *GUI) SetFraction(key string, frac float32) (float32, error) {
	f, ok := g.fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	frac = mathx.Clamp(frac, 0, 1)
	return g.Set(key, f.Min+(f.Max-f.Min)*frac)
}

// SetBool stores a checkbox value and fires its callbacks.
func (g *GUI) SetBool(key string, v bool) error {
	f, ok := g.fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, key)
	}
	if !f.IsBool {
		return fmt.Errorf("%w: %s is numeric", ErrFieldKind, key)
	}
	g.ctrl.bools[key] = v
	f.fire()
	return nil
}

// Toggle flips a checkbox.
func (g *GUI) Toggle(key string) error {
	v, _ := g.ctrl.Bool(key)
	return g.SetBool(key, !v)
}

// Refresh fires every field's callbacks with its current value, pushing the
// controller state into whatever the fields are bound to.
func (g *GUI) Refresh() {
	for _, fo := range g.folders {
		for _, f := range fo.fields {
			f.fire()
		}
	}
}
