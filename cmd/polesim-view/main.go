// Command polesim-view animates a single pole: particles slide along a
// horizontal line, bounce off each other and drop off the ends.
//
// Controls: Space pauses, N advances one time unit while paused, R restarts,
// Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/katalvlaran/polesim/pole"
	"github.com/katalvlaran/polesim/scenario"
)

const (
	screenW = 960
	screenH = 200
	marginX = 40
	lineY   = screenH / 2

	// framesPerTick paces the simulation at 60/framesPerTick time units
	// per second of wall clock.
	framesPerTick = 30
)

var (
	lineColor  = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	rightColor = color.RGBA{R: 0x40, G: 0xc0, B: 0x60, A: 0xff}
	leftColor  = color.RGBA{R: 0xd0, G: 0x60, B: 0x40, A: 0xff}
)

// Game adapts one pole to the ebiten.Game interface.
type Game struct {
	states []pole.State
	length int
	speed  int

	pl  *pole.Pole
	now int

	frame    int
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game and its initial pole.
func NewGame(length, speed int, states []pole.State) (*Game, error) {
	g := &Game{states: states, length: length, speed: speed}
	if err := g.Reset(); err != nil {
		return nil, err
	}

	return g, nil
}

// Reset rebuilds the pole from the original starting states.
func (g *Game) Reset() error {
	pl, err := pole.New(g.length, g.speed, g.states)
	if err != nil {
		return err
	}
	g.pl = pl
	g.now = 0
	g.frame = 0

	return nil
}

// Update handles input and advances the simulation at the fixed tick pace.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return g.Reset()
	}

	if g.pl.Cleared() {
		return nil
	}

	g.frame++
	if (!g.paused && g.frame%framesPerTick == 0) || g.tickOnce {
		g.now++
		g.pl.Step(g.now)
		g.tickOnce = false
	}

	return nil
}

// Draw renders the pole, its live particles and the clock.
func (g *Game) Draw(screen *ebiten.Image) {
	scale := float32(screenW-2*marginX) / float32(g.length)
	vector.StrokeLine(screen, marginX, lineY, screenW-marginX, lineY, 2, lineColor, false)

	for i := 0; i < g.pl.Len(); i++ {
		if g.pl.Removed(i) {
			continue
		}
		p := g.pl.Particle(i)
		x := marginX + float32(p.Position)*scale
		c := rightColor
		if p.Direction == pole.Left {
			c = leftColor
		}
		vector.DrawFilledRect(screen, x-3, lineY-3, 6, 6, c, false)
	}

	status := fmt.Sprintf("t=%d  on pole: %d/%d", g.now, g.pl.Len()-removedCount(g.pl), g.pl.Len())
	if g.pl.Cleared() {
		status += fmt.Sprintf("  cleared at t=%d", g.pl.ClearingTime())
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func removedCount(pl *pole.Pole) int {
	n := 0
	for i := 0; i < pl.Len(); i++ {
		if pl.Removed(i) {
			n++
		}
	}

	return n
}

func main() {
	scenarioPath := flag.String("scenario", "", "gcfg scenario file; overrides the inline flags")
	length := flag.Int("length", 214, "pole length")
	speed := flag.Int("speed", 1, "particle speed in positions per time unit")
	positions := flag.String("positions", "11,12,7,13,176,23,191", "comma-separated starting positions")
	dirs := flag.String("dirs", "", `starting directions as "R"/"L" letters, one per position; alternates when empty`)
	flag.Parse()

	l, sp, pos := *length, *speed, []int(nil)
	if *scenarioPath != "" {
		s, err := scenario.Read(*scenarioPath)
		if err != nil {
			log.Fatal(err)
		}
		l, sp, pos = s.Length, s.Speed, s.Positions
	} else {
		for _, field := range strings.Split(*positions, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			p, err := strconv.Atoi(field)
			if err != nil {
				log.Fatalf("invalid position %q: %v", field, err)
			}
			pos = append(pos, p)
		}
	}

	states, err := buildStates(pos, *dirs)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(l, sp, states)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("polesim")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// buildStates pairs each position with its direction letter; when dirs is
// empty the directions alternate starting with Right.
func buildStates(positions []int, dirs string) ([]pole.State, error) {
	if dirs != "" && len(dirs) != len(positions) {
		return nil, fmt.Errorf("need %d direction letters, got %d", len(positions), len(dirs))
	}

	states := make([]pole.State, len(positions))
	for i, p := range positions {
		d := pole.Right
		switch {
		case dirs == "":
			if i%2 == 1 {
				d = pole.Left
			}
		case dirs[i] == 'R':
			d = pole.Right
		case dirs[i] == 'L':
			d = pole.Left
		default:
			return nil, fmt.Errorf("invalid direction letter %q", dirs[i])
		}
		states[i] = pole.State{Position: p, Direction: d}
	}

	return states, nil
}
