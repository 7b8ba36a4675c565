package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mjl-/pui"
	"github.com/mjl-/pui/drawhost"
	"github.com/mjl-/pui/logger"
	"github.com/mjl-/pui/settings"
	"github.com/mjl-/pui/termhost"
)

var run = settings.NewRun()

// sizeValue is a pflag.Value for "WxH" sizes.
type sizeValue struct {
	p *image.Point
}

var _ pflag.Value = sizeValue{}

func (v sizeValue) String() string {
	if v.p == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", v.p.X, v.p.Y)
}

func (v sizeValue) Set(s string) error {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return fmt.Errorf("bad size %q, want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return fmt.Errorf("bad width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return fmt.Errorf("bad height in %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("size %q must be positive", s)
	}
	*v.p = image.Pt(w, h)
	return nil
}

func (v sizeValue) Type() string {
	return "size"
}

var rootCmd = &cobra.Command{
	Use:           settings.BinaryName,
	Short:         "Show pui dialogs and menus",
	Long:          "Show a menu bar with submenus, ranged values, toggles and an about box.\nKeys: arrows and tab move, return activates, escape closes menus.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var lgr *logr.Logger
		if run.LogPath != "" {
			var err error
			lgr, err = logger.Open(run.MinLogLevel, run.LogPath)
			if err != nil {
				return err
			}
		} else {
			lgr = logger.Get(run.MinLogLevel)
		}
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.BinaryName, logger.SubCommandKey, cmd.Name())
		pui.SetLogger(*lgr)

		ctx := logger.WithLogger(cmd.Context(), lgr)
		cmd.SetContext(settings.IntoContext(ctx, run))
		return nil
	},
}

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Show the demo in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runTerm(cmd.Context())
	},
}

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Show the demo in a devdraw window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDraw(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		v := settings.VersionInformation
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit %s, built %s)\n", settings.BinaryName, v.BuildVersion, v.Commit, v.BuildTime)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int8VarP(&run.MinLogLevel, "log-level", "v", run.MinLogLevel, "minimum log level, negative for more detail")
	flags.StringVar(&run.LogPath, "log-file", "", "write logs to this file instead of stderr")
	flags.StringVar(&run.ThemePath, "theme", "", "path to a YAML theme with colors and font")
	drawCmd.Flags().Var(sizeValue{&run.WindowSize}, "size", "window size, WxH")

	rootCmd.AddCommand(termCmd, drawCmd, versionCmd)
}

// Execute runs the command selected by the arguments.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func loadTheme(ctx context.Context) (settings.Theme, pui.Palette, error) {
	r, _ := settings.FromContext(ctx)
	theme := settings.DefaultTheme()
	if r != nil && r.ThemePath != "" {
		var err error
		theme, err = settings.LoadTheme(r.ThemePath)
		if err != nil {
			return theme, pui.Palette{}, err
		}
	}
	palette, err := theme.Palette()
	return theme, palette, err
}

// withRegistry runs fn with the toolkit's type registry initialized.
func withRegistry(lgr *logr.Logger, fn func() error) error {
	reg, err := pui.Init()
	if err != nil {
		return fmt.Errorf("init toolkit: %w", err)
	}
	defer func() {
		if err := reg.Close(); err != nil {
			lgr.Error(err, "closing registry")
		}
	}()
	code, err := reg.Register(settings.BinaryName + ".demo")
	if err != nil {
		return fmt.Errorf("register demo: %w", err)
	}
	lgr.V(1).Info("registry ready", "kinds", reg.Len(), "demo", code)
	return fn()
}

func runTerm(ctx context.Context) error {
	lgr := logger.FromContext(ctx)
	if run.LogPath == "" && run.MinLogLevel <= 0 {
		lgr.Info("logging to stderr while the terminal is in use, consider --log-file")
	}
	_, palette, err := loadTheme(ctx)
	if err != nil {
		return err
	}
	run.Host = settings.HostTerm

	h := termhost.NewHost(*lgr, settings.BinaryName, palette)
	h.Unhandled = func(e interface{}) {
		lgr.V(1).Info("unhandled", "event", fmt.Sprintf("%+v", e))
	}
	err = withRegistry(lgr, func() error {
		newDemo(*lgr, h.Stack, h)
		return h.Run(ctx)
	})
	if errors.Is(err, termhost.ErrQuit) {
		return nil
	}
	return err
}

func runDraw(ctx context.Context) error {
	lgr := logger.FromContext(ctx)
	theme, palette, err := loadTheme(ctx)
	if err != nil {
		return err
	}
	run.Host = settings.HostDraw

	h, err := drawhost.NewHost(*lgr, settings.BinaryName, run.Dim(), palette, theme.Font)
	if err != nil {
		return err
	}
	h.Unhandled = func(e interface{}) {
		lgr.V(1).Info("unhandled", "event", fmt.Sprintf("%+v", e))
	}
	err = withRegistry(lgr, func() error {
		newDemo(*lgr, h.Stack, h)
		return h.Loop()
	})
	if errors.Is(err, drawhost.ErrClosed) {
		return nil
	}
	return err
}
