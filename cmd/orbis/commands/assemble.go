package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/orbis/internal/app"
)

func (c *CLI) newAssembleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assemble <input-dir>",
		Short: "Assemble a frame directory into a movie",
		Long: `Assemble encodes the numbered frames of a directory into a movie using
ffmpeg, which must be installed. Stretch repeats every frame to slow the
movie down; pad appends copies of the last frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			output, _ := flags.GetString("output")
			if output == "" {
				output = filepath.Join(args[0], "movie.mp4")
			}
			fps, _ := flags.GetInt("fps")
			width, _ := flags.GetInt("width")
			height, _ := flags.GetInt("height")
			stretch, _ := flags.GetInt("stretch")
			padding, _ := flags.GetInt("pad")

			return c.components.App.Assemble(cmd.Context(), app.AssembleOptions{
				InputDir: args[0],
				Output:   output,
				FPS:      fps,
				Width:    width,
				Height:   height,
				Stretch:  stretch,
				Padding:  padding,
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Path of the movie file (defaults to movie.mp4 in the input directory)")
	cmd.Flags().Int("fps", 24, "Frame rate of the movie")
	cmd.Flags().Int("width", 1920, "Movie width in pixels")
	cmd.Flags().Int("height", 1080, "Movie height in pixels")
	cmd.Flags().Int("stretch", 1, "Repeat every frame this many times")
	cmd.Flags().Int("pad", 0, "Append this many copies of the last frame")

	return cmd
}
