package uniforms

import (
	"fmt"
	"strconv"
	"strings"
)

// Target addresses a uniform or one component of an array element,
// written "uNoiseCoef" or "uLightPos[1].x".
type Target struct {
	Name  string
	Index int // -1 when the whole slot is addressed
	Axis  int // -1 when no component is addressed
}

// ParseTarget parses a target expression.
func ParseTarget(expr string) (Target, error) {
	expr = strings.TrimSpace(expr)
	t := Target{Index: -1, Axis: -1}
	name := expr
	if open := strings.IndexByte(expr, '['); open >= 0 {
		close := strings.IndexByte(expr, ']')
		if close < open {
			return Target{}, fmt.Errorf("uniforms: bad target %q", expr)
		}
		idx, err := strconv.Atoi(expr[open+1 : close])
		if err != nil || idx < 0 {
			return Target{}, fmt.Errorf("uniforms: bad index in %q", expr)
		}
		name = expr[:open]
		t.Index = idx
		rest := expr[close+1:]
		switch rest {
		case "":
		case ".x", ".r":
			t.Axis = 0
		case ".y", ".g":
			t.Axis = 1
		case ".z", ".b":
			t.Axis = 2
		default:
			return Target{}, fmt.Errorf("uniforms: bad component in %q", expr)
		}
	}
	if name == "" {
		return Target{}, fmt.Errorf("uniforms: empty target %q", expr)
	}
	t.Name = name
	return t, nil
}

func (t Target) String() string {
	switch {
	case t.Index < 0:
		return t.Name
	case t.Axis < 0:
		return fmt.Sprintf("%s[%d]", t.Name, t.Index)
	default:
		return fmt.Sprintf("%s[%d].%c", t.Name, t.Index, "xyz"[t.Axis])
	}
}

// Assign copies a scalar into the addressed slot unchanged.
func (s *Set) Assign(t Target, v float32) error {
	if t.Index >= 0 {
		if t.Axis < 0 {
			return fmt.Errorf("%w: %s needs a component", ErrKindMismatch, t)
		}
		return s.SetVec3Axis(t.Name, t.Index, t.Axis, v)
	}
	slot, ok := s.slots[t.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUniform, t.Name)
	}
	if slot.Kind == KindBool {
		return s.SetBool(t.Name, v != 0)
	}
	return s.SetFloat(t.Name, v)
}
