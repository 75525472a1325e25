package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"termnav/internal/input/types"
	"termnav/internal/terminal"
)

// RunKeys prints every decoded event until Quit, end of input or ctx is
// done. It is a diagnostic for keymap problems.
func RunKeys(ctx context.Context, src types.EventSource, out io.Writer, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	fmt.Fprint(out, "press keys to see their events, q to quit\r\n")

	for ctx.Err() == nil {
		ev, err := src.Next()
		switch {
		case terminal.IsTimeout(err):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return errors.Wrap(err, "read input")
		}

		log.WithField("event", ev.String()).Debug("Keys: event")
		fmt.Fprintf(out, "%s\r\n", ev)

		if ev.Is(types.KindQuit) {
			return nil
		}
	}
	return nil
}
