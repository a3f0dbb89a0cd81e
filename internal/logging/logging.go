// Package logging implements wide-event logging: every handled call produces a
// single log line carrying all the attributes recorded while it ran.
package logging

import (
	"context"
	"log/slog"
)

type contextKey string

const wideEventKey = contextKey("wideEvent")

type wideEvent struct {
	attrs []slog.Attr
}

func newWideEvent() *wideEvent {
	return &wideEvent{
		attrs: make([]slog.Attr, 0),
	}
}

func (event *wideEvent) Record(attr ...slog.Attr) {
	event.attrs = append(event.attrs, attr...)
}

func (event *wideEvent) Attrs() []slog.Attr {
	return event.attrs
}

// Middleware wraps h so that each call emits one event. Calls that return an
// error are logged at error level with the error attached.
func Middleware[Req, Res any](logger *slog.Logger, h func(ctx context.Context, req Req) (Res, error)) func(ctx context.Context, req Req) (Res, error) {
	return func(ctx context.Context, req Req) (Res, error) {
		event := newWideEvent()
		ctx = context.WithValue(ctx, wideEventKey, event)
		res, err := h(ctx, req)
		if err != nil {
			logger.LogAttrs(ctx, slog.LevelError, "error handling command", append(event.Attrs(), slog.Any("error", err))...)
		} else {
			logger.LogAttrs(ctx, slog.LevelInfo, "successful command", event.Attrs()...)
		}
		return res, err
	}
}

// Record adds attrs to the event of the surrounding Middleware call.
// It does nothing when ctx carries no event.
func Record(ctx context.Context, attr ...slog.Attr) {
	event, ok := ctx.Value(wideEventKey).(*wideEvent)
	if !ok {
		return
	}

	event.Record(attr...)
}
