package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/yukinoda/KmCaster/caster"
	"github.com/yukinoda/KmCaster/input"
	"github.com/yukinoda/KmCaster/keymap"
)

const ctrlC = 0x03

// Keys prints every input event with the label the overlay would draw. It
// is used to find raw codes missing from the keymaps.
type Keys struct {
	Hook string `help:"Input backend (${enum})" enum:"${hooks}" default:"uiohook"`
}

// Run is called by Kong when the keys command is executed.
func (k *Keys) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hook, err := input.Open(k.Hook, logger)
	if err != nil {
		return err
	}
	defer hook.Close()

	// Raw mode keeps probed keys off the terminal; Ctrl+C then arrives as a
	// byte instead of a signal.
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			logger.Warn("Cannot switch terminal to raw mode", "error", err)
		} else {
			defer func() { _ = term.Restore(fd, old) }()
			go watchInterrupt(os.Stdin, stop)
		}
	}

	return probe(ctx, hook, os.Stdout)
}

func watchInterrupt(r io.Reader, stop func()) {
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			if b == ctrlC {
				stop()
				return
			}
		}
	}
}

func probe(ctx context.Context, hook input.Hook, out io.Writer) error {
	km := keymap.For(hook.Platform())
	fmt.Fprintf(out, "Listening on %s keys, press Ctrl+C to quit\r\n", km.Platform())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-hook.Events():
			if !ok {
				return caster.ErrHookClosed
			}
			fmt.Fprint(out, Describe(km, ev)+"\r\n")
		}
	}
}

// Describe renders ev with its translation.
func Describe(km *keymap.Keymap, ev input.Event) string {
	var b strings.Builder
	b.WriteString(ev.String())
	switch ev.Kind {
	case input.KeyPressed, input.KeyReleased:
		if h, ok := km.Modifier(ev.Rawcode); ok {
			fmt.Fprintf(&b, " modifier=%s", h)
		} else {
			fmt.Fprintf(&b, " label=%q", km.Translate(ev.Rawcode, ev.Text))
		}
	}
	return b.String()
}
