// Package shaders holds the GLSL programs and resolves their include lines.
package shaders

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed glsl/*
var files embed.FS

const includeDirective = "#pragma include"

var ErrIncludeCycle = errors.New("shaders: include cycle")

// Source returns a shader file with every `#pragma include "file"` line replaced by
// that file's (recursively resolved) contents.
func Source(name string) (string, error) {
	return resolve(files, name, nil)
}

// Program returns the vertex and fragment source for a program name such as "grain".
func Program(name string) (vs, fsrc string, err error) {
	if vs, err = Source(name + ".vert"); err != nil {
		return "", "", err
	}
	if fsrc, err = Source(name + ".frag"); err != nil {
		return "", "", err
	}
	return vs, fsrc, nil
}

func resolve(fsys fs.FS, name string, stack []string) (string, error) {
	for _, s := range stack {
		if s == name {
			return "", fmt.Errorf("%w: %s -> %s", ErrIncludeCycle, strings.Join(stack, " -> "), name)
		}
	}
	data, err := fs.ReadFile(fsys, "glsl/"+name)
	if err != nil {
		return "", fmt.Errorf("shaders: %w", err)
	}
	stack = append(stack, name)

	var b strings.Builder
	for _, line := range strings.SplitAfter(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, includeDirective) {
			b.WriteString(line)
			continue
		}
		inc := strings.Trim(strings.TrimSpace(trimmed[len(includeDirective):]), `"<>`)
		if inc == "" {
			return "", fmt.Errorf("shaders: %s: empty include", name)
		}
		body, err := resolve(fsys, inc, stack)
		if err != nil {
			return "", err
		}
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
