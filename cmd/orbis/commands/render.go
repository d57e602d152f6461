package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/orbis/internal/app"
	"go.trai.ch/orbis/internal/core/domain"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Resample cube face frames into spherical frames",
		Long: `Render converts the six cube face renders of each frame into one
spherical frame. The base directory must contain one subdirectory per cube
face (xPos, xNeg, yPos, yNeg, zPos, zNeg); the output frames are written to
its "spherical" subdirectory. Settings come from orbis.yaml where present
and from flags, flags winning.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("output")

			settings, err := c.components.Loader.Load(".")
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("width") {
				settings.Width, _ = flags.GetInt("width")
			}
			if flags.Changed("height") {
				settings.Height, _ = flags.GetInt("height")
			}
			if flags.Changed("cube-size") {
				settings.CubeSize, _ = flags.GetInt("cube-size")
			}
			if flags.Changed("sub-width") {
				settings.SubWidth, _ = flags.GetInt("sub-width")
			}
			if flags.Changed("sub-height") {
				settings.SubHeight, _ = flags.GetInt("sub-height")
			}
			if flags.Changed("proj") {
				id, _ := flags.GetInt("proj")
				proj, err := domain.ProjectionFromID(id)
				if err != nil {
					return err
				}
				settings.Projection = proj.String()
			}
			if flags.Changed("format") {
				settings.Format, _ = flags.GetString("format")
			}
			if flags.Changed("workers") {
				settings.Workers, _ = flags.GetInt("workers")
			}
			if flags.Changed("cache-dir") {
				settings.CacheDir, _ = flags.GetString("cache-dir")
			}
			if noCache, _ := flags.GetBool("no-cache"); noCache {
				settings.Cache = false
			}
			if flags.Changed("frame-start") {
				settings.Frames.Start, _ = flags.GetInt("frame-start")
			}
			if flags.Changed("frame-end") {
				settings.Frames.End, _ = flags.GetInt("frame-end")
			}
			if flags.Changed("frame-jump") {
				settings.Frames.Step, _ = flags.GetInt("frame-jump")
			}

			return c.components.App.Render(cmd.Context(), app.RenderOptions{
				Dir:      dir,
				Settings: settings,
			})
		},
	}

	cmd.Flags().StringP("output", "o", ".", "Base directory holding the cube face subdirectories")
	cmd.Flags().Int("width", 1280, "Output frame width in pixels")
	cmd.Flags().Int("height", 720, "Output frame height in pixels")
	cmd.Flags().Int("cube-size", 0, "Cube face edge in pixels (0 derives it from the output size)")
	cmd.Flags().Int("sub-width", 3, "Subsamples per output pixel, horizontally")
	cmd.Flags().Int("sub-height", 3, "Subsamples per output pixel, vertically")
	cmd.Flags().IntP("proj", "p", 0, "Output projection (0 equirectangular, 1 Mercator)")
	cmd.Flags().StringP("format", "f", "png", "Image format of the frames")
	cmd.Flags().IntP("workers", "w", 0, "Frames composited concurrently (0 means one per CPU)")
	cmd.Flags().BoolP("no-cache", "n", false, "Rebuild the sampling index instead of using the cache")
	cmd.Flags().String("cache-dir", "", "Directory for cached sampling indexes")
	cmd.Flags().IntP("frame-start", "s", 1, "First frame to composite")
	cmd.Flags().IntP("frame-end", "e", 250, "Last frame to composite")
	cmd.Flags().IntP("frame-jump", "j", 1, "Step between composited frames")

	return cmd
}
