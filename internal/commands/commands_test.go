package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("  /set uNoiseCoef 4.5 ")
	require.True(t, ok)
	assert.Equal(t, []string{"set", "uNoiseCoef", "4.5"}, args)

	_, ok = Parse("   ")
	assert.False(t, ok)
}

func TestExecuteFlagsAndArgs(t *testing.T) {
	r := NewRegistry()
	fs := NewFlagSet("fps")
	show := fs.Bool("show", false, "")
	hide := fs.Bool("hide", false, "")
	var rest []string
	r.Register("fps", "--show|--hide", fs, func(args []string) error {
		rest = args
		return nil
	})

	require.NoError(t, r.Execute([]string{"fps", "--show", "extra"}))
	assert.True(t, *show)
	assert.False(t, *hide)
	assert.Equal(t, []string{"extra"}, rest)

	assert.Error(t, r.Execute([]string{"fps", "--bogus"}))
}

func TestExecuteUnknown(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Execute([]string{"nope"}), ErrUnknownCommand)
	assert.Error(t, r.Execute(nil))
}

func TestHelpSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("toggle", "<field>", nil, func([]string) error { return nil })
	r.Register("reseed", "", nil, func([]string) error { return nil })
	assert.Equal(t, []string{"reseed", "toggle <field>"}, r.Help())
}
