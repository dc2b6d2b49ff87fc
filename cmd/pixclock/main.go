package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pixclock/audio"
	"github.com/lixenwraith/pixclock/clock"
	"github.com/lixenwraith/pixclock/font"
	"github.com/lixenwraith/pixclock/render"
	"github.com/lixenwraith/pixclock/terminal"
	"github.com/lixenwraith/pixclock/theme"
)

var (
	xFlag        = flag.Int("x", 0, "Horizontal position of the clock's top-left corner")
	yFlag        = flag.Int("y", 0, "Vertical position of the clock's top-left corner")
	widthFlag    = flag.Int("width", 2, "Terminal columns per clock pixel")
	heightFlag   = flag.Int("height", 1, "Terminal rows per clock pixel")
	secondsFlag  = flag.Bool("seconds", false, "Show seconds")
	militaryFlag = flag.Bool("military", false, "Use 24-hour time")
	centerFlag   = flag.Bool("center", false, "Center the clock on screen")
	colorFlag    = flag.String("color", "green", "Clock color: green, red, blue, cyan, magenta, yellow, white")
	tzFlag       = flag.String("tz", "", "Timezone name (e.g. Europe/Berlin); empty for local time")
	tickFlag     = flag.Bool("tick", false, "Play a tick sound every second")
	chimeFlag    = flag.Bool("chime", false, "Chime at the top of the hour")
)

func main() {
	// Panic recovery: restore the terminal before the stack trace so it is
	// actually readable
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\npixclock crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pixclock: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	th, err := theme.Lookup(*colorFlag)
	if err != nil {
		return err
	}

	loc := time.Local
	if *tzFlag != "" {
		loc, err = time.LoadLocation(*tzFlag)
		if err != nil {
			return fmt.Errorf("resolve timezone: %w", err)
		}
	}

	screen, err := terminal.New()
	if err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer screen.Fini()

	var chimer *audio.Chimer
	if *tickFlag || *chimeFlag {
		// Failure leaves a silent chimer; the clock runs without sound
		chimer, _ = audio.NewChimer()
	}

	composer := clock.NewComposer(font.New(), clock.Options{
		ShowSeconds: *secondsFlag,
		Military:    *militaryFlag,
		Center:      *centerFlag,
		OriginRow:   *yFlag,
		OriginCol:   *xFlag,
		PixelRows:   *heightFlag,
		PixelCols:   *widthFlag,
	})

	driver := render.NewDriver(screen, th.StyleFor)
	defer driver.Shutdown()

	// Event poller feeds the single render loop; tcell blocks in PollEvent
	// until Fini
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticks := make(chan time.Time, 1)
	quartz := clock.NewQuartz(func(now time.Time) {
		select {
		case ticks <- now:
		default:
		}
	}, loc)
	quartz.Start()
	defer quartz.Stop()

	now := time.Now().In(loc)
	redraw := func() {
		// A failed frame leaves the snapshot alone; the next tick redraws
		// the same deltas
		_ = driver.Frame(func(cv *render.Canvas) error {
			return composer.Compose(now, cv)
		})
	}
	redraw()

	for {
		select {
		case t := <-ticks:
			now = t
			redraw()
			if chimer != nil {
				if *chimeFlag && t.Minute() == 0 && t.Second() == 0 {
					chimer.Chime()
				} else if *tickFlag {
					chimer.Tick()
				}
			}

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				// The driver resizes its canvas from the reported size on
				// the next frame
				redraw()
			case *tcell.EventKey:
				if quitKey(ev) {
					return nil
				}
			}
		}
	}
}

// quitKey matches q, Esc, and Ctrl-C
func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
