package main

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gridsight"
)

// loadMask decodes an image file into an occupancy grid. Any format with
// a registered decoder is accepted.
func loadMask(path string, threshold uint8, outside gridsight.OutsidePolicy) (*gridsight.OccupancyGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mask: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode mask %s: %w", path, err)
	}
	gridsight.Logger().Debug("gridsight: mask loaded",
		"path", path, "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	return gridsight.NewOccupancyGridFromImage(img, threshold, outside), nil
}
