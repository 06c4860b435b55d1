package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles for pretty text output. Rendering degrades to plain text when the
// writer is not a terminal.
var (
	styleTime = lipgloss.NewStyle().Faint(true)
	styleKey  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	styleLevel = map[Level]lipgloss.Style{
		LevelTrace: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		LevelDebug: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		LevelInfo:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		LevelWarn:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		LevelError: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// prettyHandler is a colorized text handler for log messages.
type prettyHandler struct {
	opts  slog.HandlerOptions
	mu    *sync.Mutex
	w     io.Writer
	attrs []slog.Attr
	group string
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{
		opts: *opts,
		mu:   &sync.Mutex{},
		w:    w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		buf.WriteString(styleTime.Render(r.Time.Format("15:04:05")))
		buf.WriteByte(' ')
	}

	level := Level(r.Level)
	if style, ok := styleLevel[level]; ok {
		buf.WriteString(style.Render(levelLabel(level)))
	} else {
		buf.WriteString(levelLabel(level))
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		h.writeAttr(buf, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}

	clone.group = name

	return &clone
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, a slog.Attr) {
	a.Value = a.Value.Resolve()

	// Flatten groups into dotted keys.
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			if a.Key != "" {
				ga.Key = a.Key + "." + ga.Key
			}

			h.writeAttr(buf, ga)
		}

		return
	}

	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	buf.WriteByte(' ')
	buf.WriteString(styleKey.Render(key + "="))
	buf.WriteString(a.Value.String())
}

// levelLabel pads level names to a fixed width for column alignment.
func levelLabel(l Level) string {
	label := l.String()
	for len(label) < 5 {
		label += " "
	}

	return label
}
