package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/asset"
	"grain-scenes/internal/commands"
	"grain-scenes/internal/engineconfig"
	"grain-scenes/internal/env"
	"grain-scenes/internal/fonts"
	"grain-scenes/internal/graphics"
	"grain-scenes/internal/logger"
	"grain-scenes/internal/scene"
	"grain-scenes/internal/terminal"
	"grain-scenes/internal/ui"
	"grain-scenes/internal/variant"
)

const defaultVariant = "grain"

func main() {
	variantName := flag.String("variant", "", "embedded variant: "+fmt.Sprint(variant.Names()))
	variantFile := flag.String("variant-file", "", "load the variant from a YAML file instead")
	model := flag.String("model", "", "model source (path, URL or .zip) overriding the variant's")
	fullscreen := flag.Bool("fullscreen", false, "start fullscreen")
	debugLog := flag.Bool("debug", false, "log debug lines")
	font := flag.String("font", "", "panel font: file path or family name under "+fonts.BaseDir)
	seed := flag.Int64("seed", 0, "random seed for instance layout (0 = clock)")
	flag.Parse()

	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "env:", err)
	}
	log := logger.New(*debugLog || env.Bool(env.KeyDebug))

	prefs, err := engineconfig.Load()
	if err != nil {
		log.Warnf("prefs: %v (using defaults)", err)
	}

	v, err := loadVariant(*variantFile, engineconfig.Pick(*variantName, env.Get(env.KeyVariant), prefs.LastVariant, defaultVariant))
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("variant %s (%s)", v.Name, v.Title)

	loader := asset.NewLoader(asset.DefaultCacheDir, log)
	reg := commands.NewRegistry()
	term := terminal.New(log, reg)
	engine := ui.New()
	if err := engine.LoadCSS("assets/ui/panel.css"); err != nil && !os.IsNotExist(err) {
		log.Warnf("panel css: %v", err)
	}

	var (
		scn   *scene.Scene
		panel *ui.Panel
	)
	setup := func() {
		scn, err = scene.New(v, scene.Options{
			Log:    log,
			Loader: loader,
			Seed:   *seed,
			Model:  engineconfig.Pick(*model, env.Get(env.KeyModel)),
		})
		if err != nil {
			log.Errorf("scene: %v", err)
			rl.CloseWindow()
			os.Exit(1)
		}
		if prefs.ShowFPS {
			scn.Debug.SetShowStats(true)
		}
		if name := engineconfig.Pick(*font, env.Get(env.KeyFont)); name != "" {
			if path, err := fonts.Find(fonts.BaseDir, name); err != nil {
				log.Warnf("font %s: not found under %s", name, fonts.BaseDir)
			} else if err := engine.LoadFont(path); err != nil {
				log.Warnf("font %s: %v", path, err)
			}
		}
		panel = ui.NewPanel(scn.GUI, engine, log)
		panel.Visible = prefs.PanelOpen
		registerCommands(reg, &console{log: log, scene: scn, panel: panel, prefs: &prefs, variant: v.Name})
	}
	update := func() {
		term.Update()
		over := panel.Update()
		scn.InputBlocked = over || term.IsOpen()
		scn.Update()
	}
	draw := func() {
		scn.Draw()
		panel.Draw()
		term.Draw()
	}
	teardown := func() {
		scn.Close()
	}

	graphics.Run(graphics.Config{
		Title:      "grain / " + v.Title,
		Width:      prefs.WindowWidth,
		Height:     prefs.WindowHeight,
		Fullscreen: *fullscreen,
	}, setup, update, func() rl.Color { return scn.ClearColor() }, draw, teardown)
}

func loadVariant(file, name string) (variant.Variant, error) {
	if file != "" {
		return variant.LoadFile(file)
	}
	return variant.Load(name)
}
