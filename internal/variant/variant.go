// Package variant describes each demo scene as data. The three demos share one composer
// and differ only in the numbers kept in variants/*.yaml.
package variant

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"grain-scenes/internal/layout"
	"grain-scenes/internal/palette"
	"grain-scenes/internal/uniforms"
)

//go:embed variants/*.yaml
var files embed.FS

const baseName = "base"

var ErrUnknownVariant = errors.New("variant: unknown variant")

// Shapes a ring or single instance can use.
const (
	ShapeSphere   = "sphere"
	ShapeCylinder = "cylinder"
	ShapeBox      = "box"  // unit box resting on y=0
	ShapeCube     = "cube" // unit box centered on its position
)

// Shader programs in internal/shaders.
const (
	ProgramGrain      = "grain"
	ProgramLightGrain = "lightgrain"
)

// Variant is one complete scene description.
type Variant struct {
	Name       string     `yaml:"name"`
	Title      string     `yaml:"title"`
	Camera     Camera     `yaml:"camera"`
	Orbit      Orbit      `yaml:"orbit"`
	Background Background `yaml:"background"`
	Material   Material   `yaml:"material"`
	Lights     []Light    `yaml:"lights"`
	Controller []Knob     `yaml:"controller"`
	Panel      []Folder   `yaml:"panel"`
	Spheres    *Ring      `yaml:"spheres"`
	Columns    *Ring      `yaml:"columns"`
	Singles    []Single   `yaml:"singles"`
	Model      *Model     `yaml:"model"`
	EaseMouse  bool       `yaml:"easeMouse"`
	Stats      bool       `yaml:"stats"`
	AxesHelper float32    `yaml:"axesHelper"` // axis length, 0 hides it
}

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV      float32    `yaml:"fov"`
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
}

// Orbit configures the orbit-style camera control.
type Orbit struct {
	Drag       bool    `yaml:"drag"`
	AutoRotate bool    `yaml:"autoRotate"`
	Speed      float32 `yaml:"speed"` // auto-rotate degrees per second
	Damping    float32 `yaml:"damping"`
}

// Background is a flat colour or an image, optionally dusted with noise.
type Background struct {
	Color string  `yaml:"color"`
	Image string  `yaml:"image"`
	Grain float32 `yaml:"grain"` // noise opacity in [0, 1]
}

// Material is the shared shader program and its uniforms.
type Material struct {
	Program           string       `yaml:"program"`
	ResolutionDivisor float32      `yaml:"resolutionDivisor"` // uResolution = window / divisor, 0 omits it
	Transparent       bool         `yaml:"transparent"`
	Uniforms          []UniformDef `yaml:"uniforms"`
}

// UniformDef declares one uniform slot. From names a controller knob supplying the initial value.
type UniformDef struct {
	Name   string       `yaml:"name"`
	Kind   string       `yaml:"kind"`
	Value  float32      `yaml:"value"`
	Values [][3]float32 `yaml:"values"`
	Colors []string     `yaml:"colors"`
	From   string       `yaml:"from"`
}

// Light is a coloured point/spot light fed to lit shaders.
type Light struct {
	Color     string     `yaml:"color"`
	Position  [3]float32 `yaml:"position"`
	Intensity float32    `yaml:"intensity"`
}

// Knob is one tweak-panel controller value. Boolean knobs use kind "bool" with value 0 or 1.
type Knob struct {
	Key   string  `yaml:"key"`
	Value float32 `yaml:"value"`
	Kind  string  `yaml:"kind"`
}

// IsBool reports whether the knob is a checkbox value.
func (k Knob) IsBool() bool {
	return k.Kind == "bool"
}

// Folder is a panel folder.
type Folder struct {
	Name   string       `yaml:"folder"`
	Open   bool         `yaml:"open"`
	Fields []PanelField `yaml:"fields"`
}

// PanelField is a panel control bound to a uniform target such as "uLightPos[0].x".
type PanelField struct {
	Key    string  `yaml:"key"`
	Min    float32 `yaml:"min"`
	Max    float32 `yaml:"max"`
	Step   float32 `yaml:"step"`
	Bool   bool    `yaml:"bool"`
	Target string  `yaml:"target"`
}

// Ring is N copies of a shape spread on a circle.
type Ring struct {
	Shape       string       `yaml:"shape"`
	Count       int          `yaml:"count"`
	Radius      float32      `yaml:"radius"`
	Y           layout.Range `yaml:"y"`
	Scale       layout.Range `yaml:"scale"`
	Bob         bool         `yaml:"bob"`
	InContainer bool         `yaml:"inContainer"`
}

// Single is one hand-placed instance.
type Single struct {
	Shape    string     `yaml:"shape"`
	Position [3]float32 `yaml:"position"`
	Scale    [3]float32 `yaml:"scale"`
}

// Model is a mesh file loaded asynchronously.
type Model struct {
	Source      string     `yaml:"source"`
	Scale       float32    `yaml:"scale"`
	YawDeg      float32    `yaml:"yaw"`
	Offset      [3]float32 `yaml:"offset"`
	InContainer bool       `yaml:"inContainer"`
}

var (
	baseOnce sync.Once
	base     Variant
	baseErr  error
)

// Base returns the defaults every variant document is decoded over.
func Base() (Variant, error) {
	baseOnce.Do(func() {
		data, err := files.ReadFile("variants/" + baseName + ".yaml")
		if err != nil {
			baseErr = fmt.Errorf("variant: %w", err)
			return
		}
		if err := yaml.Unmarshal(data, &base); err != nil {
			baseErr = fmt.Errorf("variant: base: %w", err)
		}
	})
	if baseErr != nil {
		return Variant{}, baseErr
	}
	var out Variant
	if err := copier.CopyWithOption(&out, &base, copier.Option{DeepCopy: true}); err != nil {
		return Variant{}, fmt.Errorf("variant: copy base: %w", err)
	}
	return out, nil
}

// Names lists the embedded variants, sorted.
func Names() []string {
	entries, err := fs.ReadDir(files, "variants")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name != baseName {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Load decodes an embedded variant over the base defaults.
func Load(name string) (Variant, error) {
	if name == baseName {
		return Variant{}, fmt.Errorf("%w: %s", ErrUnknownVariant, name)
	}
	data, err := files.ReadFile("variants/" + name + ".yaml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Variant{}, fmt.Errorf("%w: %s (have %s)", ErrUnknownVariant, name, strings.Join(Names(), ", "))
		}
		return Variant{}, fmt.Errorf("variant: %w", err)
	}
	return Decode(data)
}

// LoadFile decodes a variant document from disk over the base defaults.
func LoadFile(p string) (Variant, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return Variant{}, fmt.Errorf("variant: %w", err)
	}
	return Decode(data)
}

// Decode decodes a YAML document over the base defaults and validates the result.
func Decode(data []byte) (Variant, error) {
	v, err := Base()
	if err != nil {
		return Variant{}, err
	}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Variant{}, fmt.Errorf("variant: %w", err)
	}
	if err := v.Validate(); err != nil {
		return Variant{}, err
	}
	return v, nil
}

// Validate checks shapes, programs, panel ranges and uniform declarations.
func (v *Variant) Validate() error {
	switch v.Material.Program {
	case ProgramGrain, ProgramLightGrain:
	default:
		return fmt.Errorf("variant %s: unknown program %q", v.Name, v.Material.Program)
	}
	for _, r := range []*Ring{v.Spheres, v.Columns} {
		if r == nil {
			continue
		}
		if !validShape(r.Shape) {
			return fmt.Errorf("variant %s: unknown shape %q", v.Name, r.Shape)
		}
		if r.Count < 0 || r.Radius < 0 {
			return fmt.Errorf("variant %s: ring of %s needs count >= 0 and radius >= 0", v.Name, r.Shape)
		}
		if r.Y.Min > r.Y.Max || r.Scale.Min > r.Scale.Max {
			return fmt.Errorf("variant %s: ring of %s has an inverted range", v.Name, r.Shape)
		}
	}
	for _, s := range v.Singles {
		if !validShape(s.Shape) {
			return fmt.Errorf("variant %s: unknown shape %q", v.Name, s.Shape)
		}
	}
	for _, u := range v.Material.Uniforms {
		if _, err := u.slotKind(); err != nil {
			return fmt.Errorf("variant %s: %w", v.Name, err)
		}
		for _, c := range u.Colors {
			if _, ok := palette.Float3(c); !ok {
				return fmt.Errorf("variant %s: uniform %s: bad colour %q", v.Name, u.Name, c)
			}
		}
	}
	for _, fo := range v.Panel {
		for _, f := range fo.Fields {
			if !f.Bool && f.Min >= f.Max {
				return fmt.Errorf("variant %s: panel field %s: min must be below max", v.Name, f.Key)
			}
			if _, err := uniforms.ParseTarget(f.Target); err != nil {
				return fmt.Errorf("variant %s: panel field %s: %w", v.Name, f.Key, err)
			}
		}
	}
	return nil
}

func validShape(s string) bool {
	switch s {
	case ShapeSphere, ShapeCylinder, ShapeBox, ShapeCube:
		return true
	}
	return false
}

func (u UniformDef) slotKind() (uniforms.Kind, error) {
	switch u.Kind {
	case "float", "":
		return uniforms.KindFloat, nil
	case "bool":
		return uniforms.KindBool, nil
	case "vec2":
		return uniforms.KindVec2, nil
	case "vec3":
		return uniforms.KindVec3, nil
	case "color":
		return uniforms.KindColor, nil
	}
	return 0, fmt.Errorf("uniform %s: unknown kind %q", u.Name, u.Kind)
}

// KnobValue returns the controller default for key.
func (v *Variant) KnobValue(key string) (Knob, bool) {
	for _, k := range v.Controller {
		if k.Key == key {
			return k, true
		}
	}
	return Knob{}, false
}

// BuildUniforms turns the material declaration into a uniform set. Slots with From take their
// initial value from the controller; uResolution is added when a divisor is configured.
func (v *Variant) BuildUniforms(width, height float32) (*uniforms.Set, error) {
	set := uniforms.New()
	for _, u := range v.Material.Uniforms {
		kind, err := u.slotKind()
		if err != nil {
			return nil, err
		}
		value := u.Value
		boolValue := value != 0
		if u.From != "" {
			k, ok := v.KnobValue(u.From)
			if !ok {
				return nil, fmt.Errorf("variant %s: uniform %s: no controller value %q", v.Name, u.Name, u.From)
			}
			value, boolValue = k.Value, k.Value != 0
		}
		switch kind {
		case uniforms.KindFloat:
			set.DefineFloat(u.Name, value)
		case uniforms.KindBool:
			set.DefineBool(u.Name, boolValue)
		case uniforms.KindVec2:
			var xy [3]float32
			if len(u.Values) > 0 {
				xy = u.Values[0]
			}
			set.DefineVec2(u.Name, xy[0], xy[1])
		case uniforms.KindVec3:
			set.DefineVec3Array(u.Name, u.Values...)
		case uniforms.KindColor:
			cs := make([][3]float32, 0, len(u.Colors))
			for _, c := range u.Colors {
				rgb, ok := palette.Float3(c)
				if !ok {
					return nil, fmt.Errorf("variant %s: uniform %s: bad colour %q", v.Name, u.Name, c)
				}
				cs = append(cs, rgb)
			}
			set.DefineColorArray(u.Name, cs...)
		}
	}
	if len(v.Lights) > 0 {
		pos := make([][3]float32, 0, len(v.Lights))
		col := make([][3]float32, 0, len(v.Lights))
		for _, l := range v.Lights {
			rgb, ok := palette.Float3(l.Color)
			if !ok {
				return nil, fmt.Errorf("variant %s: light colour %q", v.Name, l.Color)
			}
			pos = append(pos, l.Position)
			col = append(col, [3]float32{rgb[0] * l.Intensity, rgb[1] * l.Intensity, rgb[2] * l.Intensity})
		}
		set.DefineVec3Array("uSpotPos", pos...)
		set.DefineColorArray("uSpotColor", col...)
		set.DefineFloat("uSpotCount", float32(len(v.Lights)))
	}
	if v.Material.ResolutionDivisor > 0 {
		set.DefineVec2("uResolution", width/v.Material.ResolutionDivisor, height/v.Material.ResolutionDivisor)
	}
	return set, nil
}
