// Package logger configures the process-wide structured logger: zap for
// encoding and output, exposed as a logr.Logger.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mjl-/pui/settings"
)

// Field names in every entry. The command keys are added by the CLI.
const (
	RootCommandKey = "root_command"
	SubCommandKey  = "sub_command"
	CommitKey      = "commit"
	VersionKey     = "version"
	BuildTimeKey   = "build_time"
	GoVersionKey   = "go_version"
	TimeStampKey   = "timestamp"
	MessageKey     = "message"
)

// sink is the configured logger. It is set up at most once.
type sink struct {
	setup sync.Once
	zap   *zap.Logger
	logr  *logr.Logger
	close func() // Closes the file from Open, if any.
}

var (
	global sink
	noop   = logr.Discard()
)

// Get sets up the global logger writing JSON to stderr at the given zap
// level (-1 debug, 0 info, and so on) and returns it. Only the first call
// to Get or Open configures the logger; later calls return it as is.
func Get(level int8) *logr.Logger {
	global.setup.Do(func() {
		global.use(newZap(level, zapcore.Lock(os.Stderr)))
	})
	return GetGlobalLogger()
}

// Open is like Get, but writes to path. A terminal host owns stderr, so
// its logging goes to a file.
func Open(level int8, path string) (*logr.Logger, error) {
	var err error
	global.setup.Do(func() {
		ws, closeFn, oerr := zap.Open(path)
		if oerr != nil {
			err = fmt.Errorf("open log file: %w", oerr)
			return
		}
		global.close = closeFn
		global.use(newZap(level, ws))
	})
	if err != nil {
		return nil, err
	}
	return GetGlobalLogger(), nil
}

func (s *sink) use(zl *zap.Logger) {
	l := zapr.NewLogger(zl)
	s.zap = zl
	s.logr = &l
}

// newZap returns a JSON logger to ws, with the build of this binary in
// every entry.
func newZap(level int8, ws zapcore.WriteSyncer) *zap.Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = TimeStampKey
	enc.MessageKey = MessageKey
	enc.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), ws, zap.NewAtomicLevelAt(zapcore.Level(level)))
	return zap.New(core.With(buildFields()),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WithFatalHook(zapcore.WriteThenPanic),
	)
}

func buildFields() []zapcore.Field {
	gov := "unknown"
	if bi, ok := debug.ReadBuildInfo(); ok {
		gov = bi.GoVersion
	}
	v := settings.VersionInformation
	return []zapcore.Field{
		zap.String(CommitKey, v.Commit),
		zap.String(VersionKey, v.BuildVersion),
		zap.String(BuildTimeKey, v.BuildTime),
		zap.String(GoVersionKey, gov),
	}
}

type ctxKey struct{}

// WithLogger returns ctx carrying log. If ctx already carries log, ctx is returned.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if cur, ok := ctx.Value(ctxKey{}).(*logr.Logger); ok && cur == log {
		return ctx
	}
	return context.WithValue(ctx, ctxKey{}, log)
}

// FromContext returns the logger of ctx, or the global logger, or a logger
// that discards everything.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*logr.Logger); ok {
		return log
	}
	return GetGlobalLogger()
}

// Sync flushes buffered entries and closes a log file opened by Open.
// Call it before exiting.
func Sync() {
	if global.zap == nil {
		return
	}
	if err := global.zap.Sync(); err != nil && !isIgnorableSyncError(err) {
		fmt.Fprintf(os.Stderr, "logger: sync: %v\n", err)
	}
	if global.close != nil {
		global.close()
		global.close = nil
	}
}

// Syncing stderr fails when it is a terminal or pipe.
func isIgnorableSyncError(err error) bool {
	for _, errno := range []syscall.Errno{syscall.ENOTTY, syscall.EINVAL, syscall.EIO, syscall.EBADF} {
		if errors.Is(err, errno) {
			return true
		}
	}
	// Windows console handles.
	return strings.Contains(err.Error(), "The handle is invalid")
}

// GetGlobalLogger returns the configured logger, or a discarding one if
// Get or Open has not been called.
func GetGlobalLogger() *logr.Logger {
	if global.logr == nil {
		return &noop
	}
	return global.logr
}

func GetNoopLogger() *logr.Logger {
	return &noop
}

// WithValues returns a copy of log with keysAndValues added.
func WithValues(log *logr.Logger, keysAndValues ...any) *logr.Logger {
	l := log.WithValues(keysAndValues...)
	return &l
}
