package main

import (
	"errors"
	"image"
	"math"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/gogpu/ratingbar"
)

// shapeFills are the columns of the shapes grid.
var shapeFills = []ratingbar.FillState{
	ratingbar.Full(),
	ratingbar.Partial(0.5),
	ratingbar.Empty(),
}

func shapesCmd() *cobra.Command {
	var (
		output string
		size   float64
		border float64
	)

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Render every shape full, half filled and empty",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if size <= 0 {
				return errors.New("--size must be positive")
			}
			img, err := shapesGrid(ratingbar.ShapeStyle{
				Size:        size,
				BorderWidth: border,
				Select:      ratingbar.DefaultSelectColor,
				Unselect:    gg.Hex("d3d3d3"),
				Border:      gg.Hex("a9a9a9"),
			})
			if err != nil {
				return err
			}
			return saveImage(img, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "shapes.png", "Output image file")
	cmd.Flags().Float64Var(&size, "size", 64, "Slot size in pixels")
	cmd.Flags().Float64Var(&border, "border", 0, "Outline width in pixels")
	return cmd
}

// shapesGrid draws one row per shape and one column per fill state on a
// white background.
func shapesGrid(style ratingbar.ShapeStyle) (*image.RGBA, error) {
	const gap = 8
	cell := int(math.Ceil(style.Size)) + gap
	shapes := ratingbar.ShapeTypes()

	img := image.NewRGBA(image.Rect(0, 0, len(shapeFills)*cell+gap, len(shapes)*cell+gap))
	draw.Draw(img, img.Bounds(), image.NewUniform(gg.White.Color()), image.Point{}, draw.Src)

	for row, shape := range shapes {
		for col, fill := range shapeFills {
			at := image.Pt(gap+col*cell, gap+row*cell)
			if err := ratingbar.DrawShape(img, at, shape, fill, style); err != nil {
				return nil, err
			}
		}
	}
	return img, nil
}
