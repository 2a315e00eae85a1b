package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/guzus/thinthread/internal/config"
	"github.com/guzus/thinthread/internal/frames"
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "thinthread",
	Short: "Generate the ThinThread splash animation frames",
	Long: `thinthread renders "ThinThread" in the figlet slant font and writes
36 color-cycled frames to codex-rs/tui2/frames/council/frame_<n>.txt.

Each frame colors line i with palette[(i + n) mod 5], so playing the
files back in order makes the colors ripple through the letters.

Examples:
  thinthread            # (re)generate every frame
  thinthread check      # verify the frames on disk are current`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
	},
	RunE: runGenerate,
}

func init() {
	// Logs go to stderr; stdout only carries the completion notice.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"log every frame as it is written")

	rootCmd.AddGroup(&cobra.Group{ID: "thinthread", Title: "Commands:"})
}

func newGenerator() (*frames.Generator, error) {
	g, err := frames.New(config.Default(), logrus.StandardLogger())
	if err != nil {
		return nil, fmt.Errorf("preparing frames: %w", err)
	}
	return g, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g, err := newGenerator()
	if err != nil {
		return err
	}
	if err := g.Generate(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s frames.\n", g.Config().Text)
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
