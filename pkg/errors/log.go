package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogHandler is an ErrorHandler that writes errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a BridgeError.
func (h *LogHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[uitext error] %s [%s]", err.Op, err.Kind)
		if err.Channel != "" {
			fmt.Fprintf(w, " channel=%s", err.Channel)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[uitext error] %s: %v\n", err.Op, err.Err)
	}
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[uitext panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[uitext panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}

// SlogHandler forwards reports to a structured logger.
type SlogHandler struct {
	Logger *slog.Logger
}

// NewSlogHandler returns a handler logging through logger, or slog.Default
// when logger is nil.
func NewSlogHandler(logger *slog.Logger) *SlogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogHandler{Logger: logger}
}

// HandleError logs err at error level.
func (h *SlogHandler) HandleError(err *BridgeError) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
		slog.Any("err", err.Err),
	}
	if err.Channel != "" {
		attrs = append(attrs, slog.String("channel", err.Channel))
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "bridge error", attrs...)
}

// HandlePanic logs err at error level with its stack trace.
func (h *SlogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.Logger.LogAttrs(context.Background(), slog.LevelError, "recovered panic",
		slog.String("op", err.Op),
		slog.String("kind", KindPanic.String()),
		slog.Any("value", err.Value),
		slog.String("stack", err.StackTrace),
	)
}
