package tweak

import "grain-scenes/internal/uniforms"

// BindUniform copies every change of f straight into target on set. Errors from the
// uniform set (unknown name, wrong kind) go to onErr, which may be nil.
func BindUniform(f *Field, set *uniforms.Set, target uniforms.Target, onErr func(error)) *Field {
	return f.OnChange(func(v float32) {
		if err := set.Assign(target, v); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
