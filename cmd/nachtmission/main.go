package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/eniklas/nachtmission/audio"
	"github.com/eniklas/nachtmission/config"
	"github.com/eniklas/nachtmission/engine"
	"github.com/eniklas/nachtmission/event"
	"github.com/eniklas/nachtmission/game"
	"github.com/eniklas/nachtmission/input"
	"github.com/eniklas/nachtmission/logging"
	"github.com/eniklas/nachtmission/parameter"
	"github.com/eniklas/nachtmission/telemetry"
	"github.com/eniklas/nachtmission/terminal"
)

var (
	configFlag = flag.String("config", "", "Config file (yaml, toml or json), defaults apply when empty")
	muteFlag   = flag.Bool("mute", false, "Start with sound off")
	logFlag    = flag.String("log", "", "Log file, overrides log.file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nachtmission: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *logFlag != "" {
		cfg.Log.File = *logFlag
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "nachtmission: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	var logOut io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	log, err := logging.New(logging.Options{Level: cfg.Log.Level, Writer: logOut, Pretty: cfg.Log.Pretty})
	if err != nil {
		return err
	}

	player := audio.NewPlayer(cfg.Audio, log)
	if cfg.Audio.Enabled {
		if err := player.Initialize(); err != nil {
			// Playable without sound
			log.Warn().Err(err).Msg("audio unavailable")
		}
	}
	defer player.Close()

	recorder, err := telemetry.New()
	if err != nil {
		return err
	}

	sim, err := game.New(cfg,
		game.WithEffects(player),
		game.WithListener(engine.MultiListener{recorder, scoreLog{log: log}}),
		game.WithLogger(log),
	)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	screen.EnableFocus()
	defer func() {
		// Restore the terminal before a panic reaches stderr
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "nachtmission crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(2)
		}
		screen.Fini()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	controls := input.NewControls(nil, 0)
	renderer := terminal.NewRenderer(screen, cfg.World)

	runErr := make(chan error, 1)
	go func() {
		runErr <- sim.Run(ctx, func() game.Input { return controls.Sample(time.Now()) })
	}()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	log.Info().Str("session", sim.Score().SessionID).Msg("mission started")

	var lastDraw time.Time

	for {
		select {
		case <-ctx.Done():
			return waitRun(runErr)

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch controls.HandleKey(ev, time.Now()) {
				case input.IntentQuit:
					cancel()
				case input.IntentToggleMute:
					player.ToggleMute()
				case input.IntentReset:
					sim.Reset()
					log.Info().Str("session", sim.Score().SessionID).Msg("mission restarted")
				}
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					controls.Release()
				}
			}

		case <-sim.UpdateDone():
			if time.Since(lastDraw) < parameter.FrameUpdateInterval {
				continue
			}
			lastDraw = time.Now()
			player.SetRotorSpeed(sim.RotorSpeed(), cfg.Rotor.MinSpeed, cfg.Rotor.MaxSpeed)

			frame := terminal.Capture(sim)
			frame.Muted = player.Muted()
			renderer.Draw(frame)
		}
	}
}

func waitRun(runErr <-chan error) error {
	select {
	case err := <-runErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("running simulation: %w", err)
		}
	case <-time.After(time.Second):
	}
	return nil
}

// scoreLog writes score events to the session log
type scoreLog struct {
	log zerolog.Logger
}

func (l scoreLog) OnScoreEvent(ev engine.ScoreEvent) {
	e := l.log.Debug()
	if ev.Type == event.EventGameOver {
		e = l.log.Info().Str("outcome", ev.Outcome.String())
	}
	e.Str("event", ev.Type.String()).
		Int("rescued", ev.Counters.Rescued).
		Int("killed", ev.Counters.Killed).
		Int("lives", ev.Counters.Lives).
		Msg("score")
}
