package scene

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grain-scenes/internal/asset"
	"grain-scenes/internal/background"
	"grain-scenes/internal/debug"
	"grain-scenes/internal/instances"
	"grain-scenes/internal/logger"
	"grain-scenes/internal/motion"
	"grain-scenes/internal/orbit"
	"grain-scenes/internal/palette"
	"grain-scenes/internal/primitives"
	"grain-scenes/internal/tweak"
	"grain-scenes/internal/uniforms"
	"grain-scenes/internal/variant"
)

// Options are the pieces the scene borrows from the caller.
type Options struct {
	Log    logger.Leveled
	Loader *asset.Loader
	Seed   int64  // 0 picks one from the clock
	Model  string // overrides the variant's model source when set
}

// Scene composes one variant: backdrop, camera, orbit control, instances, shared material
// and tweak panel. Build it after the window exists; every method runs on the frame thread.
type Scene struct {
	Variant  variant.Variant
	Camera   rl.Camera3D
	Orbit    *orbit.Control
	World    *instances.World
	Mouse    motion.Mouse
	Uniforms *uniforms.Set
	GUI      *tweak.GUI
	Debug    *debug.Debug

	// InputBlocked keeps drags from reaching the orbit control (e.g. pointer over the panel).
	InputBlocked bool

	log      logger.Leveled
	loader   *asset.Loader
	ctx      context.Context
	cancel   context.CancelFunc
	reg      *primitives.Registry
	mtl      *primitives.Material
	model    *primitives.Model
	modelReq uuid.UUID
	bg       rl.Texture2D
	bgColor  rl.Color
	width    int32
	height   int32
	start    time.Time
	seed     int64
}

// New builds the scene for v at the current window size.
func New(v variant.Variant, opts Options) (*Scene, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	s := &Scene{
		Variant: v,
		Debug:   debug.New(),
		log:     log,
		loader:  opts.Loader,
		width:   int32(rl.GetScreenWidth()),
		height:  int32(rl.GetScreenHeight()),
		start:   time.Now(),
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	set, err := v.BuildUniforms(float32(s.width), float32(s.height))
	if err != nil {
		return nil, err
	}
	s.Uniforms = set
	gui, err := v.BuildPanel(set, func(err error) { log.Warnf("panel: %v", err) })
	if err != nil {
		return nil, err
	}
	s.GUI = gui

	mtl, err := primitives.LoadMaterial(v.Material.Program, set, v.Material.Transparent)
	if err != nil {
		// keep running with an empty stage; the panel and console still work
		log.Errorf("material %s: %v", v.Material.Program, err)
	}
	s.mtl = mtl
	s.reg = primitives.NewRegistry(mtl)

	s.setupCamera()
	s.Debug.SetShowStats(v.Stats)
	s.Debug.AxesSize = v.AxesHelper
	s.loadBackground()
	s.Reseed(opts.Seed)

	if v.Model != nil {
		src := v.Model.Source
		if opts.Model != "" {
			src = opts.Model
		}
		if s.loader != nil && src != "" {
			s.modelReq = s.loader.Request(s.ctx, src)
			log.Infof("model %s requested (%s)", src, s.modelReq)
		}
	}
	log.Infof("scene %s ready: %d instances, program %s", v.Name, len(s.World.Instances), v.Material.Program)
	return s, nil
}

func (s *Scene) setupCamera() {
	c := s.Variant.Camera
	s.Camera = rl.Camera3D{
		Position:   rl.NewVector3(c.Position[0], c.Position[1], c.Position[2]),
		Target:     rl.NewVector3(c.Target[0], c.Target[1], c.Target[2]),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       c.FOV,
		Projection: rl.CameraPerspective,
	}
	o := s.Variant.Orbit
	s.Orbit = orbit.New(c.Position, c.Target)
	s.Orbit.AutoRotate = o.AutoRotate
	s.Orbit.Speed = o.Speed * rl.Deg2rad
	s.Orbit.Damping = o.Damping
}

func (s *Scene) loadBackground() {
	bg := s.Variant.Background
	r, g, b, ok := palette.ParseHex(bg.Color)
	if !ok {
		r, g, b = 255, 255, 255
	}
	s.bgColor = rl.NewColor(r, g, b, 255)
	if bg.Image == "" && bg.Grain <= 0 {
		return
	}
	img, err := background.Compose(background.Options{
		Width:  int(s.width),
		Height: int(s.height),
		Color:  bg.Color,
		Image:  bg.Image,
		Grain:  float64(bg.Grain),
	})
	if err != nil {
		s.log.Warnf("background: %v (using gradient)", err)
	}
	if img == nil {
		return
	}
	rimg := rl.NewImageFromImage(img)
	s.bg = rl.LoadTextureFromImage(rimg)
	rl.UnloadImage(rimg)
}

// Reseed rebuilds every instance with fresh random placement. seed 0 uses the clock.
func (s *Scene) Reseed(seed int64) int64 {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.seed = seed
	s.World = instances.Build(&s.Variant, rand.New(rand.NewSource(seed)))
	s.log.Debugf("instances rebuilt with seed %d", seed)
	return seed
}

// Seed returns the seed of the current layout.
func (s *Scene) Seed() int64 {
	return s.seed
}

// ClearColor is the flat colour behind the backdrop.
func (s *Scene) ClearColor() rl.Color {
	return s.bgColor
}

// Update polls input, eases the pointer, moves instances and uploads per-frame uniforms.
func (s *Scene) Update() {
	if rl.IsWindowResized() {
		s.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	s.pollModel()

	mp := rl.GetMousePosition()
	s.Mouse.SetTargetFromScreen(mp.X, mp.Y, float32(s.width), float32(s.height))
	if s.Variant.EaseMouse {
		s.Mouse.Ease()
	} else {
		s.Mouse.Current = s.Mouse.Target
	}

	s.updateOrbit()

	now := float64(time.Since(s.start).Microseconds()) / 1000
	s.World.Update(now, s.Mouse.Current)
}

func (s *Scene) updateOrbit() {
	if s.Variant.Orbit.Drag && !s.InputBlocked {
		if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
			d := rl.GetMouseDelta()
			s.Orbit.Drag(-d.X, d.Y, float32(s.height))
		}
		if wheel := rl.GetMouseWheelMove(); wheel != 0 {
			s.Orbit.Zoom(wheel)
		}
	}
	s.Orbit.Update(rl.GetFrameTime())
	eye := s.Orbit.Eye()
	s.Camera.Position = rl.NewVector3(eye[0], eye[1], eye[2])
}

func (s *Scene) resize(w, h int32) {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return
	}
	s.width, s.height = w, h
	if div := s.Variant.Material.ResolutionDivisor; div > 0 {
		if err := s.Uniforms.SetVec2("uResolution", float32(w)/div, float32(h)/div); err != nil {
			s.log.Warnf("resize: %v", err)
		}
	}
	s.log.Debugf("resized to %dx%d", w, h)
}

func (s *Scene) pollModel() {
	if s.loader == nil {
		return
	}
	for _, res := range s.loader.Poll() {
		if res.ID != s.modelReq {
			continue
		}
		if res.Err != nil {
			s.log.Errorf("model %s: %v", res.Source, res.Err)
			continue
		}
		m, err := primitives.LoadModel(res.Path)
		if err != nil {
			s.log.Errorf("model %s: %v", res.Path, err)
			continue
		}
		s.model.Unload()
		s.model = m
		s.log.Infof("model %s loaded", res.Path)
	}
}

// ModelLoaded reports whether the async model has been uploaded.
func (s *Scene) ModelLoaded() bool {
	return s.model != nil
}

// Draw renders the backdrop and the 3D stage. Overlays are drawn by the caller afterwards.
func (s *Scene) Draw() {
	if rl.IsTextureValid(s.bg) {
		src := rl.NewRectangle(0, 0, float32(s.bg.Width), float32(s.bg.Height))
		dst := rl.NewRectangle(0, 0, float32(s.width), float32(s.height))
		rl.DrawTexturePro(s.bg, src, dst, rl.NewVector2(0, 0), 0, rl.White)
	}

	rl.BeginMode3D(s.Camera)
	if s.mtl.Valid() {
		s.mtl.SetViewPos([3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z})
		s.mtl.Apply()
		s.mtl.Begin()
		for _, in := range s.World.Instances {
			s.reg.Draw(in.Shape, s.World.WorldMatrix(in))
		}
		if s.model != nil && s.World.Model != nil {
			s.reg.DrawModel(s.model, s.World.WorldMatrix(s.World.Model))
		}
		s.mtl.End()
	}
	s.Debug.DrawAxes()
	rl.EndMode3D()

	s.Debug.Draw()
}

// Close cancels a pending model request and frees GPU resources.
func (s *Scene) Close() {
	s.cancel()
	s.model.Unload()
	s.reg.Unload()
	s.mtl.Unload()
	if rl.IsTextureValid(s.bg) {
		rl.UnloadTexture(s.bg)
	}
}
