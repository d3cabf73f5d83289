// Package render drives the sequential per-pixel render loop: for every
// pixel, ask the camera for its primary ray(s), trace each through the
// integrator, and average the results into the output radiance buffer.
package render

import (
	"fmt"

	"github.com/finch-ray/go-whitted-raytracer/pkg/camera"
	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
	"github.com/finch-ray/go-whitted-raytracer/pkg/integrator"
	"github.com/finch-ray/go-whitted-raytracer/pkg/world"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Image is an H×W grid of floating-point RGB radiance, one triple per
// pixel, row-major ([y][x]). Values are not tone-mapped; that is a
// consumer's responsibility.
type Image [][]core.Vec3

// NewImage allocates a width x height Image.
func NewImage(width, height int) Image {
	img := make(Image, height)
	for y := range img {
		img[y] = make([]core.Vec3, width)
	}
	return img
}

// Render produces the H×W radiance image for w as seen through cam, using
// cfg for the integrator's recursion/epsilon behavior. It is strictly
// sequential -- no goroutines are spawned -- so renders are deterministic
// pixel for pixel.
func Render(w *world.World, cam *camera.Camera, cfg integrator.Config) Image {
	return RenderWithLogger(w, cam, cfg, nil)
}

// RenderWithLogger is Render with scanline progress reported to logger
// every 10% of rows. A nil logger disables progress output.
func RenderWithLogger(w *world.World, cam *camera.Camera, cfg integrator.Config, logger core.Logger) Image {
	tr := integrator.New(w, cfg)
	size := cam.Config()
	img := NewImage(size.Width, size.Height)

	logEvery := size.Height / 10
	if logEvery == 0 {
		logEvery = 1
	}

	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			rays := cam.RaysForPixel(x, y)
			sum := core.NewVec3(0, 0, 0)
			for _, ray := range rays {
				sum = sum.Add(tr.Trace(ray, 1))
			}
			img[y][x] = sum.Multiply(1.0 / float64(len(rays)))
		}
		if logger != nil && (y+1)%logEvery == 0 {
			logger.Printf("rendered %d/%d rows\n", y+1, size.Height)
		}
	}

	return img
}
