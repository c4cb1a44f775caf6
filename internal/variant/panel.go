package variant

import (
	"fmt"

	"grain-scenes/internal/tweak"
	"grain-scenes/internal/uniforms"
)

// BuildPanel creates the controller from the variant's knobs and one folder per panel entry,
// each field bound 1:1 to its uniform target in set. Binding errors at change time go to onErr.
// Bound uniforms keep their initial values until a field changes.
func (v *Variant) BuildPanel(set *uniforms.Set, onErr func(error)) (*tweak.GUI, error) {
	ctrl := tweak.NewController()
	for _, k := range v.Controller {
		if k.IsBool() {
			ctrl.DefineBool(k.Key, k.Value != 0)
		} else {
			ctrl.Define(k.Key, k.Value)
		}
	}
	gui := tweak.New(ctrl)
	for _, fo := range v.Panel {
		folder := gui.AddFolder(fo.Name)
		for _, pf := range fo.Fields {
			target, err := uniforms.ParseTarget(pf.Target)
			if err != nil {
				return nil, fmt.Errorf("variant %s: panel field %s: %w", v.Name, pf.Key, err)
			}
			if set.Slot(target.Name) == nil {
				return nil, fmt.Errorf("variant %s: panel field %s: %w: %s", v.Name, pf.Key, uniforms.ErrUnknownUniform, target.Name)
			}
			var f *tweak.Field
			if pf.Bool {
				f = folder.AddBool(pf.Key)
			} else {
				f = folder.Add(pf.Key, pf.Min, pf.Max).Step(pf.Step)
			}
			tweak.BindUniform(f, set, target, onErr)
		}
		if fo.Open {
			folder.Open()
		}
	}
	return gui, nil
}
