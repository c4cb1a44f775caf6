package uniforms

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownUniform = errors.New("uniforms: unknown uniform")
	ErrKindMismatch   = errors.New("uniforms: kind mismatch")
	ErrIndexRange     = errors.New("uniforms: index out of range")
)

// Kind is the GLSL type of a slot. Bools travel as floats (0 or 1).
type Kind int

const (
	KindFloat Kind = iota
	KindBool
	KindVec2
	KindVec3
	KindColor
)

// Components is the number of floats per element.
func (k Kind) Components() int {
	switch k {
	case KindVec2:
		return 2
	case KindVec3, KindColor:
		return 3
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindColor:
		return "color"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Slot is one named uniform. Values is flattened: Count() elements of Kind.Components() floats.
type Slot struct {
	Name   string
	Kind   Kind
	Values []float32
}

// Count is the array length (1 for scalars).
func (s *Slot) Count() int {
	return len(s.Values) / s.Kind.Components()
}

// Set holds a material's uniform slots in definition order.
type Set struct {
	slots map[string]*Slot
	order []string
}

// New returns an empty set.
func New() *Set {
	return &Set{slots: make(map[string]*Slot)}
}

func (s *Set) define(name string, kind Kind, values []float32) {
	if _, ok := s.slots[name]; !ok {
		s.order = append(s.order, name)
	}
	s.slots[name] = &Slot{Name: name, Kind: kind, Values: values}
}

// DefineFloat adds or replaces a float slot.
func (s *Set) DefineFloat(name string, v float32) {
	s.define(name, KindFloat, []float32{v})
}

// DefineBool adds or replaces a bool slot.
func (s *Set) DefineBool(name string, v bool) {
	s.define(name, KindBool, []float32{boolFloat(v)})
}

// DefineVec2 adds or replaces a vec2 slot.
func (s *Set) DefineVec2(name string, x, y float32) {
	s.define(name, KindVec2, []float32{x, y})
}

// DefineVec3Array adds or replaces a vec3[len(vs)] slot.
func (s *Set) DefineVec3Array(name string, vs ...[3]float32) {
	s.define(name, KindVec3, flatten(vs))
}

// DefineColorArray adds or replaces an rgb colour array slot.
func (s *Set) DefineColorArray(name string, cs ...[3]float32) {
	s.define(name, KindColor, flatten(cs))
}

func flatten(vs [][3]float32) []float32 {
	out := make([]float32, 0, len(vs)*3)
	for _, v := range vs {
		out = append(out, v[0], v[1], v[2])
	}
	return out
}

func boolFloat(v bool) float32 {
	if v {
		return 1
	}
	return 0
}

func (s *Set) lookup(name string, kinds ...Kind) (*Slot, error) {
	slot, ok := s.slots[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUniform, name)
	}
	for _, k := range kinds {
		if slot.Kind == k {
			return slot, nil
		}
	}
	return nil, fmt.Errorf("%w: %s is %s", ErrKindMismatch, name, slot.Kind)
}

// SetFloat writes a float slot.
func (s *Set) SetFloat(name string, v float32) error {
	slot, err := s.lookup(name, KindFloat)
	if err != nil {
		return err
	}
	slot.Values[0] = v
	return nil
}

// SetBool writes a bool slot.
func (s *Set) SetBool(name string, v bool) error {
	slot, err := s.lookup(name, KindBool)
	if err != nil {
		return err
	}
	slot.Values[0] = boolFloat(v)
	return nil
}

// SetVec2 writes a vec2 slot.
func (s *Set) SetVec2(name string, x, y float32) error {
	slot, err := s.lookup(name, KindVec2)
	if err != nil {
		return err
	}
	slot.Values[0], slot.Values[1] = x, y
	return nil
}

// SetVec3At replaces element i of a vec3 or colour array.
func (s *Set) SetVec3At(name string, i int, v [3]float32) error {
	slot, err := s.lookup(name, KindVec3, KindColor)
	if err != nil {
		return err
	}
	if i < 0 || i >= slot.Count() {
		return fmt.Errorf("%w: %s[%d]", ErrIndexRange, name, i)
	}
	copy(slot.Values[i*3:i*3+3], v[:])
	return nil
}

// SetVec3Axis writes one component (0=x, 1=y, 2=z) of element i.
func (s *Set) SetVec3Axis(name string, i, axis int, v float32) error {
	slot, err := s.lookup(name, KindVec3, KindColor)
	if err != nil {
		return err
	}
	if i < 0 || i >= slot.Count() || axis < 0 || axis > 2 {
		return fmt.Errorf("%w: %s[%d].%d", ErrIndexRange, name, i, axis)
	}
	slot.Values[i*3+axis] = v
	return nil
}

// Float reads a float or bool slot.
func (s *Set) Float(name string) (float32, bool) {
	slot, err := s.lookup(name, KindFloat, KindBool)
	if err != nil {
		return 0, false
	}
	return slot.Values[0], true
}

// Vec3At reads element i of a vec3 or colour array.
func (s *Set) Vec3At(name string, i int) ([3]float32, bool) {
	slot, err := s.lookup(name, KindVec3, KindColor)
	if err != nil || i < 0 || i >= slot.Count() {
		return [3]float32{}, false
	}
	return [3]float32{slot.Values[i*3], slot.Values[i*3+1], slot.Values[i*3+2]}, true
}

// Slot returns the named slot or nil.
func (s *Set) Slot(name string) *Slot {
	return s.slots[name]
}

// Slots returns all slots in definition order.
func (s *Set) Slots() []*Slot {
	out := make([]*Slot, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.slots[name])
	}
	return out
}
