package cli

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

const spinnerInterval = 100 * time.Millisecond

// Spinner shows an indeterminate progress indicator while a request waits.
// On a non-terminal writer it draws nothing.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StartSpinner starts a spinner with description on w.
func StartSpinner(w io.Writer, description string) *Spinner {
	s := &Spinner{done: make(chan struct{})}
	if !IsTerminal(w) {
		return s
	}

	s.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionClearOnFinish(),
	)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				if err := s.bar.Add(1); err != nil {
					slog.Debug("Failed to update spinner", "error", err)
				}
			}
		}
	}()

	return s
}

// Stop clears the spinner. It is safe to call more than once.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
		if s.bar != nil {
			if err := s.bar.Finish(); err != nil {
				slog.Debug("Failed to clear spinner", "error", err)
			}
		}
	})
}
