package speedtui

import "golang.org/x/exp/slog"

// Options provide setup options to a Renderer
type Options struct {
	// A slog.Handler to receive logs. speedtui logs using the stdlib
	// levels. When nil, logs are discarded
	LogHandler slog.Handler
}
