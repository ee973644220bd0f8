// Package cli provides the command-line interface for huecore.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/huehome/huecore/internal/colour"
	"github.com/huehome/huecore/internal/image"
	httputil "github.com/huehome/huecore/internal/util/http"
	"github.com/huehome/huecore/internal/util/imagecache"
	"github.com/huehome/huecore/internal/version"
)

var (
	globalVerbose   bool
	globalQuiet     bool
	globalNoPreview bool
	globalCacheDir  string
	globalRefresh   bool
	globalTimeout   time.Duration

	// logger is configured from the global flags before any command runs.
	logger hclog.Logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "huecore",
		Short: "Measure wall colours and recommend paint",
		Long: `huecore measures the true material colour of a surface from a camera frame and a
segmentation mask, then recommends alternative paint colours using colour theory,
interior style palettes and the room's lighting.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobals,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalVerbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalNoPreview, "no-preview", false, "disable ANSI colour swatches")
	rootCmd.PersistentFlags().StringVar(&globalCacheDir, "cache-dir", "", "cache remote frames and masks in this directory")
	rootCmd.PersistentFlags().BoolVar(&globalRefresh, "refresh-cache", false, "re-download remote images already in --cache-dir")
	rootCmd.PersistentFlags().DurationVar(&globalTimeout, "fetch-timeout", httputil.DefaultTimeout, "timeout for downloading remote frames and masks")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(stylesCmd)
}

// setupGlobals applies the global flags.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	if globalVerbose && globalQuiet {
		return fmt.Errorf("--verbose and --quiet cannot be used together")
	}
	if globalRefresh && globalCacheDir == "" {
		return fmt.Errorf("--refresh-cache requires --cache-dir")
	}
	if globalTimeout <= 0 {
		return fmt.Errorf("--fetch-timeout must be positive, got %s", globalTimeout)
	}
	logger = newLogger(globalVerbose, cmd.ErrOrStderr())
	colour.DisableColourOutput = globalNoPreview || !isTerminal(cmd.OutOrStdout())
	return nil
}

// newLogger returns a debug logger writing to w when verbose, and a silent one otherwise.
func newLogger(verbose bool, w io.Writer) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "huecore",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "huecore",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// newLoader returns the image loader configured by the global flags.
func newLoader() *image.SmartLoader {
	loader := image.NewSmartLoader()
	loader.Fetch.Timeout = globalTimeout
	if globalCacheDir != "" {
		loader.Cache = &imagecache.Cache{Dir: globalCacheDir, Refresh: globalRefresh, Fetch: loader.Fetch}
	}
	return loader
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// infof prints progress to stderr unless --quiet is set.
func infof(cmd *cobra.Command, format string, args ...any) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format, args...)
}

// writeOutput writes content to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	logger.Debug("writing output", "path", path)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { // #nosec G306 - output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	infof(cmd, "Wrote %s\n", path)
	return nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}
