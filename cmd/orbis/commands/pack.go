package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/orbis/internal/app"
)

func (c *CLI) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <input-dir>",
		Short: "Pack groups of three grayscale frames into single color frames",
		Long: `Pack converts each group of three consecutive input frames to grayscale
and stores them in the color channels of one output frame, tripling the
effective frame rate of the assembled movie. Each output frame keeps the
frame number of its group's first frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			output, _ := flags.GetString("output")
			order, _ := flags.GetString("packed-order")
			format, _ := flags.GetString("format")
			start, _ := flags.GetInt("frame-start")
			end, _ := flags.GetInt("frame-end")

			return c.components.App.Pack(cmd.Context(), app.PackOptions{
				InputDir:  args[0],
				OutputDir: output,
				Order:     order,
				Format:    format,
				Start:     start,
				End:       end,
			})
		},
	}

	cmd.Flags().StringP("output", "o", "", "Directory for the packed frames")
	cmd.Flags().String("packed-order", "RGB", "Channel for each frame of a group (e.g. RGB packs frame 0 into red)")
	cmd.Flags().StringP("format", "f", "bmp", "Image format of the packed frames")
	cmd.Flags().IntP("frame-start", "s", 1, "First frame to pack")
	cmd.Flags().IntP("frame-end", "e", 999999, "Last frame to pack")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
