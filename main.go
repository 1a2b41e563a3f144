package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"snake-walk/ai"
	"snake-walk/game"
	"snake-walk/game/types"
	"snake-walk/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

func main() {
	tick := flag.Int("tick", int(types.TickInterval/time.Millisecond), "Tick interval in milliseconds (lower = faster)")
	width := flag.Int("width", 800, "Window width")
	height := flag.Int("height", 600, "Window height")
	size := flag.Float64("size", types.SegmentSize, "Segment size")
	length := flag.Int("length", types.InitialLength, "Initial snake length")
	margin := flag.Float64("margin", types.StepMargin, "Gap between segments; the head moves size-margin per tick")
	held := flag.Bool("held", false, "Read the up key as held like the other arrows")
	headless := flag.Bool("headless", false, "Run without a window, steered by the autopilot")
	ticks := flag.Int("ticks", 500, "Tick budget for headless runs")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Autopilot seed")
	logLevel := flag.String("log", "info", "Log level: debug, info, warning, error, none")
	flag.Parse()

	level, err := parseLogLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	rl.SetTraceLogLevel(level)

	cfg := game.DefaultConfig()
	cfg.TickInterval = time.Duration(*tick) * time.Millisecond
	cfg.SegmentSize = float32(*size)
	cfg.StepMargin = float32(*margin)
	cfg.InitialLength = *length
	cfg.UnifiedHeld = *held

	g, err := game.NewGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "invalid configuration"))
		os.Exit(2)
	}
	rl.TraceLog(rl.LogInfo, "SNAKE: session %s started (step %v, tick %v, length %d)",
		g.ID, cfg.Step(), cfg.TickInterval, cfg.InitialLength)

	bounds := types.Size{Width: float32(*width), Height: float32(*height)}
	if *headless {
		pilot := ai.NewAutopilot(*seed, 0.05)
		runHeadless(g, pilot, bounds, *ticks)
		fmt.Println(summary(g))
		return
	}

	rl.InitWindow(int32(*width), int32(*height), "Snake game")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	keyboard := ui.Keyboard{}

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
			s := renderer.Surface()
			rl.TraceLog(rl.LogInfo, "SNAKE: surface resized to %vx%v", s.Width, s.Height)
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		g.Update(dt, keyboard, renderer.Surface())
		renderer.Draw(g.Frame())
	}

	rl.TraceLog(rl.LogInfo, "SNAKE: %s", summary(g))
}

// runHeadless drives the session with the autopilot until it ends or the
// tick budget runs out.
func runHeadless(g *game.Game, pilot *ai.Autopilot, bounds types.Size, maxTicks int) {
	for i := 0; i < maxTicks && !g.IsOver(); i++ {
		if k, ok := pilot.Next(); ok {
			rl.TraceLog(rl.LogDebug, "SNAKE: tick %d autopilot pressed %s", g.Ticks(), k)
		}
		g.Tick(pilot, bounds)
	}
}

func summary(g *game.Game) string {
	head := g.Snake.Head().Min
	return fmt.Sprintf("session %s: %d ticks, %s, head at (%v, %v) heading %s",
		g.ID, g.Ticks(), g.State(), head.X, head.Y, g.Snake.Heading)
}

func parseLogLevel(s string) (rl.TraceLogLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return rl.LogDebug, nil
	case "info":
		return rl.LogInfo, nil
	case "warning", "warn":
		return rl.LogWarning, nil
	case "error":
		return rl.LogError, nil
	case "none", "off":
		return rl.LogNone, nil
	}
	return rl.LogInfo, errors.Errorf("unknown log level %q", s)
}
