package speedtui

import (
	"io"
	"time"

	"golang.org/x/exp/slog"
)

// Renderer drives the frame loop over a back/front buffer pair: mutate the
// back buffer, Render, repeat. The out writer is typically the terminal;
// Renderer is the only place the engine's output leaves the process.
//
// A Renderer is not safe for concurrent use. One render loop per terminal
// session
type Renderer struct {
	out     io.Writer
	back    *Buffer
	front   *Buffer
	log     *slog.Logger
	refresh bool

	// Statistics
	renders int
	elapsed time.Duration
}

// NewRenderer returns a Renderer for a terminal of the given size writing to
// out
func NewRenderer(out io.Writer, width int, height int, opts Options) (*Renderer, error) {
	back, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	front, err := NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if opts.LogHandler != nil {
		logger = slog.New(opts.LogHandler)
	}
	return &Renderer{
		out:   out,
		back:  back,
		front: front,
		log:   logger,
		// The terminal content is unknown until the first frame
		refresh: true,
	}, nil
}

// Buffer returns the back buffer to draw the next frame into
func (r *Renderer) Buffer() *Buffer {
	return r.back
}

// Size returns the size of the rendered area in cells
func (r *Renderer) Size() (width int, height int) {
	return r.back.Size()
}

// Render flushes the difference between the back buffer and the displayed
// frame to out, then marks the back buffer as displayed. Styling is reset
// after every non-empty flush so each frame's escape stream starts from
// terminal defaults
func (r *Renderer) Render() error {
	start := time.Now()
	var seq string
	switch {
	case r.refresh:
		if _, err := io.WriteString(r.out, clear); err != nil {
			return err
		}
		seq = r.back.Diff(nil)
		r.refresh = false
	default:
		seq = r.back.Diff(r.front)
	}
	if seq != "" {
		if _, err := io.WriteString(r.out, seq); err != nil {
			return err
		}
		if _, err := io.WriteString(r.out, sgrReset); err != nil {
			return err
		}
	}
	if err := r.front.CopyFrom(r.back); err != nil {
		return err
	}
	r.elapsed += time.Since(start)
	r.renders += 1
	r.log.Debug("flushed", "bytes", len(seq))
	return nil
}

// Refresh clears the terminal and renders the entire back buffer.
// Traditionally this is bound to ctrl+l
func (r *Renderer) Refresh() error {
	r.refresh = true
	return r.Render()
}

// Resize resizes both buffers, retaining overlapping content, and schedules a
// full redraw for the next Render
func (r *Renderer) Resize(width int, height int) error {
	if err := r.back.Resize(width, height); err != nil {
		return err
	}
	if err := r.front.Resize(width, height); err != nil {
		return err
	}
	r.refresh = true
	return nil
}

// Close logs render statistics. It does not restore terminal modes; the
// caller owns the terminal
func (r *Renderer) Close() {
	r.log.Info("renders", "count", r.renders)
	if r.renders != 0 {
		r.log.Info("time per render", "val", r.elapsed/time.Duration(r.renders))
	}
}
