package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/guzus/thinthread/internal/frames"
)

var errOutOfDate = errors.New("frames are out of date; run thinthread to regenerate")

var (
	colorRed   = lipgloss.Color("#E0245E")
	colorMuted = lipgloss.Color("#657786")
)

var checkCmd = &cobra.Command{
	Use:     "check",
	Short:   "Verify the frames on disk match a fresh render",
	Long:    "Render every frame in memory and compare it with the output directory without writing anything.",
	GroupID: "thinthread",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}

		rep, err := g.Check()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if rep.UpToDate() {
			fmt.Fprintf(out, "All %d frames up to date.\n", g.Config().FrameCount)
			return nil
		}

		// Colors are dropped automatically when out is not a terminal.
		r := lipgloss.NewRenderer(out)
		problem := r.NewStyle().Foreground(colorRed).Width(12)
		extra := r.NewStyle().Foreground(colorMuted).Width(12)

		for _, k := range rep.Missing {
			fmt.Fprintf(out, "%s%s\n", problem.Render("missing:"), frames.FileName(k))
		}
		for _, k := range rep.Stale {
			fmt.Fprintf(out, "%s%s\n", problem.Render("stale:"), frames.FileName(k))
		}
		for _, name := range rep.Unexpected {
			fmt.Fprintf(out, "%s%s\n", extra.Render("unexpected:"), name)
		}
		return errOutOfDate
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
