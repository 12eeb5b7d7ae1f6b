package tvg

import "log/slog"

const (
	defaultMaxScratchPoints   = 4096
	defaultMaxScratchSubpaths = 512
)

// RenderOption configures the renderOptions of a Render call.
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for a single Render call.
type renderOptions struct {
	logger         *slog.Logger
	maxPoints      int
	maxSubpaths    int
}

func defaultOptions() renderOptions {
	return renderOptions{
		logger:      Logger(),
		maxPoints:   defaultMaxScratchPoints,
		maxSubpaths: defaultMaxScratchSubpaths,
	}
}

// WithLogger overrides the package-level logger for a single Render call.
//
// Example:
//
//	tvg.Render(fb, header, table, cmd, tvg.WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) RenderOption {
	return func(o *renderOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScratchLimits overrides the flattener's fixed scratch-buffer
// capacities (default 4096 points, 512 sub-paths). Exceeding either
// capacity during a Render call returns ErrOutOfScratch.
func WithScratchLimits(maxPoints, maxSubpaths int) RenderOption {
	return func(o *renderOptions) {
		if maxPoints > 0 {
			o.maxPoints = maxPoints
		}
		if maxSubpaths > 0 {
			o.maxSubpaths = maxSubpaths
		}
	}
}
