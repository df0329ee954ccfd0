package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/core"
	"github.com/eniklas/nachtmission/game"
	"github.com/eniklas/nachtmission/vmath"
)

var (
	duration   = flag.Duration("duration", 5*time.Minute, "Simulated game time")
	configPath = flag.String("config", "", "Config file, defaults apply when empty")
	seed       = flag.Uint64("seed", 0, "Override game.seed when non-zero")
	stats      = flag.Bool("stats", false, "Dump the status registry at the end")
)

// autopilot climbs out, turns left and sweeps enemy territory firing at a steady rate
func autopilot(c game.ChopperView, tick int) game.Input {
	var in game.Input
	if !c.Alive || c.Crashing {
		return in
	}

	const cruise = 12.0
	in.Vertical = vmath.Clamp((cruise-c.Pos.Y)/4, -1, 1)
	if c.Pos.Y < 4 {
		return in
	}

	if c.Facing != core.FacingLeft {
		in.TurnLeft = tick%10 == 0
	}
	in.Horizontal = -1
	in.Fire = tick%20 == 0
	return in
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nachtbench: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	sim, err := game.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nachtbench: %v\n", err)
		os.Exit(1)
	}

	dt := sim.TickInterval()
	ticks := int(*duration / dt)
	start := time.Now()

	ran := 0
	for ; ran < ticks; ran++ {
		sim.Step(dt, autopilot(sim.Chopper(), ran))
		if sim.Score().GameOver {
			break
		}
	}

	elapsed := time.Since(start)
	score := sim.Score()
	c := score.Counters

	fmt.Printf("Simulation Results:\n")
	fmt.Printf("  Session:      %s\n", score.SessionID)
	fmt.Printf("  Ticks:        %d (%v simulated)\n", ran, time.Duration(ran)*dt)
	fmt.Printf("  Wall Time:    %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("  Ticks/sec:    %.0f\n", float64(ran)/elapsed.Seconds())
	}
	fmt.Printf("  Lives:        %d (lost %d)\n", c.Lives, score.LivesLost)
	fmt.Printf("  Prisoners:    captive %d, onboard %d, rescued %d, killed %d of %d\n",
		c.Captive, c.Onboard, c.Rescued, c.Killed, c.Total)
	if score.GameOver {
		fmt.Printf("  Outcome:      %s\n", score.Outcome)
	}
	for kind := core.KindTank; kind < core.KindCount; kind++ {
		if n := sim.CountKind(kind); n > 0 {
			fmt.Printf("  Live %-10s %d\n", kind.String()+":", n)
		}
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)

	if *stats {
		fmt.Printf("Status:\n")
		for _, line := range sim.Status().Lines() {
			fmt.Printf("  %s\n", line)
		}
	}
}
