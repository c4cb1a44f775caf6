package main

import (
	"fmt"
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/commands"
	"grain-scenes/internal/engineconfig"
	"grain-scenes/internal/logger"
	"grain-scenes/internal/scene"
	"grain-scenes/internal/ui"
	"grain-scenes/internal/variant"
)

// console is the state the console commands act on.
type console struct {
	log     *logger.Logger
	scene   *scene.Scene
	panel   *ui.Panel
	prefs   *engineconfig.Prefs
	variant string
}

func registerCommands(reg *commands.Registry, c *console) {
	reg.Register("set", "<field> <value>", nil, c.set)
	reg.Register("toggle", "<field>", nil, c.toggle)
	reg.Register("sync", "", nil, func([]string) error {
		c.scene.GUI.Refresh()
		c.log.Infof("panel values pushed to uniforms")
		return nil
	})
	reg.Register("reseed", "[seed]", nil, c.reseed)
	reg.Register("save", "", nil, c.save)
	reg.Register("variants", "", nil, func([]string) error {
		c.log.Infof("variants: %s (current %s)", strings.Join(variant.Names(), ", "), c.variant)
		return nil
	})
	reg.Register("fields", "", nil, func([]string) error {
		ctrl := c.scene.GUI.Controller()
		for _, k := range ctrl.Keys() {
			if b, ok := ctrl.Bool(k); ok {
				c.log.Infof("%s = %t", k, b)
			} else if f, ok := ctrl.Float(k); ok {
				c.log.Infof("%s = %g", k, f)
			}
		}
		return nil
	})

	fpsFlags := commands.NewFlagSet("fps")
	fpsShow := fpsFlags.Bool("show", false, "show the stats overlay")
	fpsHide := fpsFlags.Bool("hide", false, "hide the stats overlay")
	reg.Register("fps", "--show|--hide", fpsFlags, func([]string) error {
		show, err := showHide(fpsShow, fpsHide)
		if err != nil {
			return fmt.Errorf("fps: %w", err)
		}
		c.scene.Debug.SetShowStats(show)
		c.prefs.ShowFPS = show
		return nil
	})

	panelFlags := commands.NewFlagSet("panel")
	panelShow := panelFlags.Bool("show", false, "show the tweak panel")
	panelHide := panelFlags.Bool("hide", false, "hide the tweak panel")
	reg.Register("panel", "--show|--hide", panelFlags, func([]string) error {
		show, err := showHide(panelShow, panelHide)
		if err != nil {
			return fmt.Errorf("panel: %w", err)
		}
		c.panel.Visible = show
		c.prefs.PanelOpen = show
		return nil
	})
}

// showHide reads a --show/--hide pair and resets both for the next call.
func showHide(show, hide *bool) (bool, error) {
	defer func() { *show, *hide = false, false }()
	switch {
	case *show && *hide:
		return false, fmt.Errorf("use either --show or --hide")
	case *show:
		return true, nil
	case *hide:
		return false, nil
	}
	return false, fmt.Errorf("missing --show or --hide")
}

func (c *console) set(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <field> <value>")
	}
	v, err := strconv.ParseFloat(args[1], 32)
	if err != nil {
		return fmt.Errorf("set: %q is not a number", args[1])
	}
	stored, err := c.scene.GUI.Set(args[0], float32(v))
	if err != nil {
		return err
	}
	c.log.Infof("%s = %g", args[0], stored)
	return nil
}

func (c *console) toggle(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: toggle <field>")
	}
	if err := c.scene.GUI.Toggle(args[0]); err != nil {
		return err
	}
	v, _ := c.scene.GUI.Controller().Bool(args[0])
	c.log.Infof("%s = %t", args[0], v)
	return nil
}

func (c *console) reseed(args []string) error {
	var seed int64
	if len(args) > 0 {
		s, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("reseed: %q is not an integer", args[0])
		}
		seed = s
	}
	used := c.scene.Reseed(seed)
	c.log.Infof("reseeded with %d", used)
	return nil
}

func (c *console) save([]string) error {
	c.prefs.LastVariant = c.variant
	if !rl.IsWindowFullscreen() {
		c.prefs.WindowWidth = rl.GetScreenWidth()
		c.prefs.WindowHeight = rl.GetScreenHeight()
	}
	if err := engineconfig.Save(*c.prefs); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	c.log.Infof("preferences saved to %s", engineconfig.PrefsPath)
	return nil
}
