// Package geomengine implements [pointset.Engine] in pure Go.
//
// Line fitting supports the robust distance types L1, L2, L12, Fair, Welsch
// and Huber, using iteratively reweighted least squares for everything but
// L2. Ellipses are fitted with the direct least squares method of Halír and
// Flusser. Convex hulls are computed with Andrew's monotone chain.
package geomengine

import (
	"errors"
	"log/slog"

	"honnef.co/go/pointset"
)

var (
	ErrTooFewPoints = errors.New("geomengine: too few points")
	ErrUnsupported  = errors.New("geomengine: unsupported parameter")
	ErrDegenerate   = errors.New("geomengine: degenerate point set")
)

// Config configures an [Engine].
type Config struct {
	// MaxIterations bounds the number of reweighting steps of robust line
	// fitting.
	MaxIterations int
	// Logger receives debug output. If nil, the logger configured with
	// [pointset.SetLogger] is used.
	Logger *slog.Logger
}

var DefaultConfig = Config{
	MaxIterations: 30,
}

// Engine is a geometry engine. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	cfg Config
}

var _ pointset.Engine = (*Engine)(nil)

// New returns an engine configured by cfg. Zero fields take their values
// from [DefaultConfig].
func New(cfg Config) *Engine {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultConfig.MaxIterations
	}
	return &Engine{cfg: cfg}
}

func (e *Engine) logger() *slog.Logger {
	if e.cfg.Logger != nil {
		return e.cfg.Logger
	}
	return pointset.Logger()
}
