package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"

	"github.com/yukinoda/KmCaster/assets"
	"github.com/yukinoda/KmCaster/autofit"
	"github.com/yukinoda/KmCaster/caster"
	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/internal/config"
	"github.com/yukinoda/KmCaster/internal/log"
	"github.com/yukinoda/KmCaster/internal/util"
	"github.com/yukinoda/KmCaster/keymap"
	"github.com/yukinoda/KmCaster/label"
	"github.com/yukinoda/KmCaster/overlay"
	"github.com/yukinoda/KmCaster/switchstate"
)

const appID = "io.github.yukinoda.kmcaster"

type Cast struct {
	config.Settings `embed:""`
}

// Run is called by Kong when the cast command is executed.
func (c *Cast) Run(logger *slog.Logger, tracer log.Tracer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := c.StartCast(ctx, app.NewWithID(appID), logger, tracer)
	if err != nil && util.IsRunFromGUI() {
		logger.Error("KmCaster failed to start", "error", err)
		fmt.Println("Press any key to exit...")
		b := make([]byte, 1)
		_, _ = os.Stdin.Read(b)
	}
	return err
}

// StartCast opens the hook, builds the overlay and runs a until the window
// quits, ctx is cancelled or the hook stops.
func (c *Cast) StartCast(ctx context.Context, a fyne.App, logger *slog.Logger, tracer log.Tracer) error {
	font, err := c.Font()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	images, err := assets.Load(c.Height())
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	measurer, err := autofit.NewFaceMeasurer(font)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer measurer.Close()

	hook, err := input.Open(c.Hook, logger)
	if err != nil {
		return err
	}
	defer hook.Close()
	logger.Info("Capturing input", "hook", c.Hook, "platform", hook.Platform())

	ov := overlay.New(a, overlay.Options{
		Background:    c.Background(),
		GapHorizontal: float32(c.GapHorizontal),
		GapVertical:   float32(c.GapVertical),
		Font:          font,
		Images:        images,
		Policy:        label.NewPolicy(autofit.NewSizer(measurer)),
		Logger:        logger,
	})
	store := switchstate.New(ov)

	cst, err := caster.New(caster.Config{Delays: c.Delays(), KeyCount: c.KeyCount()},
		keymap.For(hook.Platform()), store, clockwork.NewRealClock(), logger, tracer)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg     sync.WaitGroup
		runErr error
	)
	a.Lifecycle().SetOnStarted(func() {
		fyne.Do(ov.Pin)
		wg.Add(1)
		go func() {
			defer wg.Done()
			runErr = cst.Run(runCtx, hook.Events())
			fyne.Do(a.Quit)
		}()
		if util.IsRunFromGUI() {
			go func() {
				time.Sleep(250 * time.Millisecond)
				util.HideConsoleWindow()
			}()
		}
	})

	ov.Show(store.Snapshot())
	a.Run()
	ov.Close()

	cancel()
	wg.Wait()
	if runErr != nil {
		return fmt.Errorf("input dispatch: %w", runErr)
	}
	logger.Info("KmCaster stopped")
	return nil
}
