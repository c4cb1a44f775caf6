package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrUnknownCommand is returned by Execute for names that were never registered.
var ErrUnknownCommand = errors.New("unknown command")

// Command is a console command with its own flags. Run receives the positional
// arguments left after flag parsing.
type Command struct {
	Name    string
	Usage   string
	FlagSet *flag.FlagSet
	Run     func(args []string) error
}

// Registry holds console commands by name. Add commands with Register; run with Execute.
type Registry struct {
	cmds map[string]*Command
}

func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]*Command)}
}

// NewFlagSet returns a FlagSet that reports errors instead of exiting and prints nothing.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds a command. fs may be nil for commands without flags.
func (r *Registry) Register(name, usage string, fs *flag.FlagSet, run func(args []string) error) {
	if fs == nil {
		fs = NewFlagSet(name)
	}
	r.cmds[name] = &Command{Name: name, Usage: usage, FlagSet: fs, Run: run}
}

// Parse splits a console line into tokens. A leading "/" is accepted (e.g. "/fps --show").
// ok is false for blank lines.
func Parse(line string) (args []string, ok bool) {
	line = strings.TrimPrefix(strings.TrimSpace(line), "/")
	args = strings.Fields(line)
	return args, len(args) > 0
}

// Execute runs the command in args[0] with args[1:] as flag/positional arguments.
func (r *Registry) Execute(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing command")
	}
	cmd, ok := r.cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	if err := cmd.FlagSet.Parse(args[1:]); err != nil {
		return fmt.Errorf("%s: %w", cmd.Name, err)
	}
	return cmd.Run(cmd.FlagSet.Args())
}

// Help lists "name usage" lines sorted by name.
func (r *Registry) Help() []string {
	names := make([]string, 0, len(r.cmds))
	for n := range r.cmds {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, strings.TrimSpace(n+" "+r.cmds[n].Usage))
	}
	return out
}
