// Package settings holds build metadata, per-run configuration and the
// color theme of the pui demo.
package settings

import (
	"context"
	"fmt"
	"image"
)

// BinaryName is the name of the demo binary.
const BinaryName = "puidemo"

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// VersionInformation is set at build time through ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-dev",
	BuildTime:    "unknown",
}

// HostKind selects how dialogs are shown.
type HostKind string

const (
	HostTerm HostKind = "term" // Terminal, through bubbletea.
	HostDraw HostKind = "draw" // Plan 9 devdraw window.
)

// ParseHostKind returns the kind named s.
func ParseHostKind(s string) (HostKind, error) {
	switch k := HostKind(s); k {
	case HostTerm, HostDraw:
		return k, nil
	}
	return "", fmt.Errorf("unknown host kind %q", s)
}

// Run is the configuration of one execution.
type Run struct {
	MinLogLevel int8
	Host        HostKind
	ThemePath   string // Empty for the default theme.
	LogPath     string // Empty for stderr.
	WindowSize  image.Point
}

// NewRun returns the defaults used by the demo.
func NewRun() *Run {
	return &Run{
		MinLogLevel: 0,
		Host:        HostTerm,
		WindowSize:  image.Pt(800, 600),
	}
}

// Dim returns the window size in the "WxH" form devdraw takes.
func (r *Run) Dim() string {
	return fmt.Sprintf("%dx%d", r.WindowSize.X, r.WindowSize.Y)
}

type contextKey struct{}

// IntoContext returns a context carrying r.
func IntoContext(ctx context.Context, r *Run) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the Run stored by IntoContext.
func FromContext(ctx context.Context) (*Run, bool) {
	r, ok := ctx.Value(contextKey{}).(*Run)
	return r, ok
}
