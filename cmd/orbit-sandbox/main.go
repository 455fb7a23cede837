package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fmath"
	"github.com/lixenwraith/fmath/color"
)

const (
	targetFPS   = 30
	framePeriod = time.Second / targetFPS
	hudRows     = 2

	edgeSteps    = 24
	trailSteps   = 5
	trailSpacing = 0.12 // radians between trail samples

	satStart = 4
	satMax   = 9
)

var (
	focalLen = float32(10.0)
	camDist  = float32(7.5)

	spinStep  = float32(15.0) // degrees per second added per keypress
	spinLimit = float32(180.0)

	orbitMin = float32(2.2)
	orbitMax = float32(4.5)

	edgeColor   = color.New(90, 200, 255)
	vertexColor = color.New(255, 255, 255)
)

// Cube geometry in model space. Vertex index bits select the axis signs.
var (
	cubeVerts = [8]fmath.Vec3{
		{X: -1.5, Y: -1.5, Z: -1.5},
		{X: 1.5, Y: -1.5, Z: -1.5},
		{X: -1.5, Y: 1.5, Z: -1.5},
		{X: 1.5, Y: 1.5, Z: -1.5},
		{X: -1.5, Y: -1.5, Z: 1.5},
		{X: 1.5, Y: -1.5, Z: 1.5},
		{X: -1.5, Y: 1.5, Z: 1.5},
		{X: 1.5, Y: 1.5, Z: 1.5},
	}
	cubeEdges = [12][2]int{
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

// satellite orbits the cube on a tilted circular plane.
type satellite struct {
	radius float32
	speed  float64 // radians per second
	phase  float64
	plane  fmath.Quaternion
	hue    color.Color
}

type plotPoint struct {
	x, y  int
	depth float32
	glyph rune
	col   color.Color
}

// glyphRamp picks a denser glyph as a point moves toward the camera.
type glyphRamp [3]rune

func (r glyphRamp) pick(shade float64) rune {
	switch {
	case shade > 0.82:
		return r[2]
	case shade > 0.55:
		return r[1]
	default:
		return r[0]
	}
}

var (
	edgeRamp = glyphRamp{'.', '+', '#'}
	vertRamp = glyphRamp{'.', '+', '@'}
	satRamp  = glyphRamp{'*', 'o', '@'}
	dotRamp  = glyphRamp{'.', '.', '.'}
)

type Sandbox struct {
	screen        tcell.Screen
	width, height int
	rng           *fmath.Rand

	pitch, yaw, roll             float32
	pitchRate, yawRate, rollRate float32

	sats   []satellite
	points []plotPoint

	paused bool
	board  *soundBoard
}

func NewSandbox() (*Sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &Sandbox{
		screen: screen,
		rng:    fmath.NewRand(),
		board:  newSoundBoard(),
	}
	s.width, s.height = screen.Size()
	s.reset()

	if err := s.board.init(); err != nil {
		// Non-fatal, the sandbox runs silent without a speaker
		log.Printf("audio init failed: %v", err)
	}

	return s, nil
}

func (s *Sandbox) reset() {
	s.pitch, s.yaw, s.roll = 0, 0, 0
	s.pitchRate, s.yawRate, s.rollRate = 12, 30, 0
	s.paused = false

	s.sats = s.sats[:0]
	for i := 0; i < satStart; i++ {
		s.sats = append(s.sats, newSatellite(s.rng, i))
	}
}

func newSatellite(rng *fmath.Rand, index int) satellite {
	tilt := float32(rng.Intn(140) - 70)
	node := float32(rng.Intn(360))
	return satellite{
		radius: orbitMin + rng.Float32()*(orbitMax-orbitMin),
		speed:  0.5 + rng.Float64()*1.3,
		phase:  rng.Float64()*fmath.TwoPi - fmath.Pi,
		plane:  fmath.QMul(fmath.QFromAxisAngle(node, fmath.Up), fmath.QFromAxisAngle(tilt, fmath.Right)),
		hue:    color.RandomHue(rng),
	}
}

// orbitPoint evaluates the satellite's circle at the given phase and
// lifts it onto the orbital plane.
func orbitPoint(sat *satellite, phase float64) fmath.Vec3 {
	local := fmath.Vec3{
		X: sat.radius * float32(fmath.Cos(phase)),
		Y: 0,
		Z: sat.radius * float32(fmath.Sin(phase)),
	}
	return fmath.V3TransformQuat(local, sat.plane)
}

func (s *Sandbox) update(dt float64) {
	s.pitch = fmath.WrapAngle(s.pitch + s.pitchRate*float32(dt))
	s.yaw = fmath.WrapAngle(s.yaw + s.yawRate*float32(dt))
	s.roll = fmath.WrapAngle(s.roll + s.rollRate*float32(dt))

	for i := range s.sats {
		old := s.sats[i].phase
		s.sats[i].phase = fmath.WrapRadian(old + s.sats[i].speed*dt)
		// Ascending node crossing, once per orbit
		if old < 0 && s.sats[i].phase >= 0 {
			s.board.blip(i)
		}
	}
}

// project maps a world-space point to screen cells. The last return
// reports whether the point lies in front of the camera.
func (s *Sandbox) project(p fmath.Vec3) (int, int, float32, bool) {
	depth := p.Z + camDist
	if depth < 0.5 {
		return 0, 0, 0, false
	}
	invZ := focalLen / depth
	viewH := float32(s.height - hudRows)
	scale := viewH * 0.085
	x := float32(s.width)/2 + p.X*invZ*scale*2 // 2x for terminal cell aspect 1:2
	y := viewH/2 - p.Y*invZ*scale              // +Y is up on screen
	return int(x), int(y), depth, true
}

func depthShade(depth float32) float64 {
	near := camDist - orbitMax
	far := camDist + orbitMax
	t := fmath.Clamp((depth-near)/(far-near), 0, 1)
	return 1.0 - 0.65*float64(t)
}

func (s *Sandbox) plot(p fmath.Vec3, ramp glyphRamp, c color.Color) {
	x, y, depth, ok := s.project(p)
	if !ok || x < 0 || x >= s.width || y < 0 || y >= s.height-hudRows {
		return
	}
	shade := depthShade(depth)
	s.points = append(s.points, plotPoint{
		x:     x,
		y:     y,
		depth: depth,
		glyph: ramp.pick(shade),
		col:   c.Scale(shade),
	})
}

func (s *Sandbox) draw() {
	s.screen.Clear()
	s.points = s.points[:0]

	rot := fmath.QEuler(s.pitch, s.yaw, s.roll)

	for _, e := range cubeEdges {
		a := fmath.V3TransformQuat(cubeVerts[e[0]], rot)
		b := fmath.V3TransformQuat(cubeVerts[e[1]], rot)
		for i := 0; i <= edgeSteps; i++ {
			t := float32(i) / edgeSteps
			s.plot(fmath.V3Lerp(a, b, t), edgeRamp, edgeColor)
		}
	}
	for _, v := range cubeVerts {
		s.plot(fmath.V3TransformQuat(v, rot), vertRamp, vertexColor)
	}

	for i := range s.sats {
		sat := &s.sats[i]
		for k := trailSteps; k >= 1; k-- {
			ph := fmath.WrapRadian(sat.phase - float64(k)*trailSpacing)
			s.plot(orbitPoint(sat, ph), dotRamp, sat.hue.Scale(1.0-float64(k)*0.17))
		}
		s.plot(orbitPoint(sat, sat.phase), satRamp, sat.hue)
	}

	// Painter order: far cells first so near ones overwrite
	sort.Slice(s.points, func(i, j int) bool {
		return s.points[i].depth > s.points[j].depth
	})
	for _, p := range s.points {
		st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(p.col.R), int32(p.col.G), int32(p.col.B)))
		s.screen.SetContent(p.x, p.y, p.glyph, nil, st)
	}

	s.drawHUD(rot)
	s.screen.Show()
}

func (s *Sandbox) drawHUD(rot fmath.Quaternion) {
	statusY := s.height - 2
	controlY := s.height - 1

	ang := fmath.QAxisAngles(rot)
	status := fmt.Sprintf(" pitch %6.1f  yaw %6.1f  roll %6.1f  sats %d", ang.X, ang.Y, ang.Z, len(s.sats))
	switch {
	case !s.board.active():
		status += "  [no audio]"
	case s.board.isMuted():
		status += "  [muted]"
	}
	if s.paused {
		status += "  [PAUSED]"
	}

	s.writeStr(1, statusY, status, color.New(230, 230, 240))
	s.writeStr(1, controlY, " arrows:tilt/turn  z/x:roll  +/-:sats  space:pause  m:mute  r:reset  q:quit",
		color.New(110, 110, 120))
}

func (s *Sandbox) writeStr(x, y int, str string, c color.Color) {
	st := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (s *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyUp:
			s.pitchRate = fmath.Clamp(s.pitchRate+spinStep, -spinLimit, spinLimit)
		case ev.Key() == tcell.KeyDown:
			s.pitchRate = fmath.Clamp(s.pitchRate-spinStep, -spinLimit, spinLimit)
		case ev.Key() == tcell.KeyLeft:
			s.yawRate = fmath.Clamp(s.yawRate-spinStep, -spinLimit, spinLimit)
		case ev.Key() == tcell.KeyRight:
			s.yawRate = fmath.Clamp(s.yawRate+spinStep, -spinLimit, spinLimit)
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.paused = !s.paused
			case 'z':
				s.rollRate = fmath.Clamp(s.rollRate-spinStep, -spinLimit, spinLimit)
			case 'x':
				s.rollRate = fmath.Clamp(s.rollRate+spinStep, -spinLimit, spinLimit)
			case '+', '=':
				if len(s.sats) < satMax {
					s.sats = append(s.sats, newSatellite(s.rng, len(s.sats)))
				}
			case '-':
				if len(s.sats) > 1 {
					s.sats = s.sats[:len(s.sats)-1]
				}
			case 'm':
				s.board.toggleMute()
			case 'r':
				s.reset()
			}
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) run() {
	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			events <- s.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last).Seconds()
			last = now
			if dt > 0.1 {
				dt = 0.1
			}
			if !s.paused {
				s.update(dt)
			}
			s.draw()
		}
	}
}

func (s *Sandbox) cleanup() {
	s.board.close()
	s.screen.Fini()
}

func main() {
	sandbox, err := NewSandbox()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer sandbox.cleanup()

	sandbox.run()
}
