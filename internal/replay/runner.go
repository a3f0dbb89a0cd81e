package replay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hastyy/collections/internal/assert"
	"github.com/hastyy/collections/internal/collection"
	"github.com/hastyy/collections/internal/logging"
)

const (
	replyOK  = "OK"
	replyErr = "ERR"
)

// Runner reads a script line by line, applies every command through its Handler
// and writes one reply line per command.
//
// A successful command is answered with "OK" followed by its Reply, if any.
// A command that fails with a collection.Error or an Error is answered with
// "ERR <code> <message>" and the script goes on. Any other error stops the run.
//
// Lines longer than the configured MaxLineLength are answered with
// "ERR ERR_BAD_FORMAT" without being decoded, and the script goes on.
type Runner struct {
	decoder       *Decoder
	handler       Handler
	maxLineLength int
}

// NewRunner creates a Runner. Unset config values are taken from DefaultConfig.
func NewRunner(cfg Config, decoder *Decoder, handler Handler) *Runner {
	cfg = cfg.CombineWith(DefaultConfig)

	assert.NonNil(decoder, "Decoder can't be nil")
	assert.NonNil(handler, "Handler can't be nil")
	assert.OK(cfg.MaxLineLength > 0, "MaxLineLength must be > 0, got %d", cfg.MaxLineLength)

	return &Runner{
		decoder:       decoder,
		handler:       handler,
		maxLineLength: cfg.MaxLineLength,
	}
}

// Run replays every line of r and writes the replies to w.
// It checks ctx before each line and returns ctx.Err() once it is cancelled.
func (r *Runner) Run(ctx context.Context, script io.Reader, w io.Writer) error {
	br := bufio.NewReader(script)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for line := 1; ; line++ {
		text, tooLong, err := readLine(br, r.maxLineLength)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		var cmd Command
		if tooLong {
			err = BadFormatErrorf("line exceeds %d bytes", r.maxLineLength)
		} else {
			cmd, err = r.decoder.Decode(text)
		}
		if errors.Is(err, ErrSkip) {
			continue
		}

		var reply Reply
		if err == nil {
			cmd.Line = line
			reply, err = r.handler.Execute(ctx, cmd)
		}

		if err := writeReply(bw, reply, err); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}

	return bw.Flush()
}

// readLine reads the next line without its line ending. A line longer than limit
// bytes is consumed to its end and reported as tooLong with an empty text.
// Returns io.EOF once r is exhausted.
func readLine(r *bufio.Reader, limit int) (text string, tooLong bool, err error) {
	var buf []byte
	for {
		chunk, isPrefix, readErr := r.ReadLine()
		if readErr != nil {
			return "", false, readErr
		}

		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}

// writeReply encodes the outcome of one command. It returns the command error
// itself when it can't be encoded, or the write error.
func writeReply(w io.Writer, reply Reply, cmdErr error) error {
	var err error
	switch {
	case cmdErr == nil && reply == "":
		_, err = fmt.Fprintln(w, replyOK)
	case cmdErr == nil:
		_, err = fmt.Fprintln(w, replyOK, reply)
	default:
		code, message, ok := codeOf(cmdErr)
		if !ok {
			return cmdErr
		}
		_, err = fmt.Fprintln(w, replyErr, code, message)
	}
	return err
}

func codeOf(err error) (code string, message string, ok bool) {
	if e, ok := collection.IsCollectionError(err); ok {
		return string(e.Code), e.Message, true
	}
	if e, ok := IsReplayError(err); ok {
		return string(e.Code), e.Message, true
	}
	return "", "", false
}

// LoggedHandler wraps h with the wide-event logging middleware, recording the
// command line, op and arguments on each event.
func LoggedHandler(logger *slog.Logger, h Handler) Handler {
	next := HandlerFunc(func(ctx context.Context, cmd Command) (Reply, error) {
		logging.Record(ctx,
			slog.Int("line", cmd.Line),
			slog.String("op", cmd.Op),
			slog.Any("args", cmd.Args),
		)
		return h.Execute(ctx, cmd)
	})
	return HandlerFunc(logging.Middleware(logger, next.Execute))
}
