// Package camera builds primary rays for a pixel grid from a perspective
// camera description: position, look-at target, up vector, and vertical
// field of view.
package camera

import (
	"math"

	"github.com/finch-ray/go-whitted-raytracer/pkg/core"
)

// Config describes a perspective camera. There is no lens model: every
// primary ray originates exactly at Center.
type Config struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks toward
	Up     core.Vec3 // World up direction, used to build the orthonormal basis
	VFov   float64   // Vertical field of view, in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels

	// Supersample enables 2x2 supersampling: four sub-pixel rays are
	// generated per pixel instead of one.
	Supersample bool
}

// Camera generates primary rays for pixel coordinates against a fixed
// orthonormal basis and film plane computed once at construction.
type Camera struct {
	cfg     Config
	origin  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	filmW   float64
	filmH   float64
}

// New builds a Camera from cfg, computing the orthonormal (forward, right,
// up) basis and the film plane's full width and height from VFov and the
// aspect ratio of Width/Height.
func New(cfg Config) *Camera {
	forward := cfg.LookAt.Subtract(cfg.Center).Normalize()
	right := forward.Cross(cfg.Up).Normalize()
	up := right.Cross(forward).Normalize()

	vfovRad := cfg.VFov * math.Pi / 180.0
	filmH := 2.0 * math.Tan(vfovRad/2.0)
	filmW := filmH * (float64(cfg.Width) / float64(cfg.Height))

	return &Camera{
		cfg:     cfg,
		origin:  cfg.Center,
		forward: forward,
		right:   right,
		up:      up,
		filmW:   filmW,
		filmH:   filmH,
	}
}

// rayThrough builds the primary ray for a continuous pixel-space coordinate
// (x, y), where (0,0) is the bottom-left of the image and (Width, Height)
// the top-right: u grows along the camera's right vector with x, and v
// along its up vector with y.
func (c *Camera) rayThrough(x, y float64) core.Ray {
	u := x/float64(c.cfg.Width)*c.filmW - c.filmW/2
	v := y/float64(c.cfg.Height)*c.filmH - c.filmH/2

	direction := c.forward.
		Add(c.right.Multiply(u)).
		Add(c.up.Multiply(v))

	return core.NewRay(c.origin, direction)
}

// RaysForPixel returns the primary ray(s) to trace for pixel (px, py). In
// normal mode this is a single ray through the pixel center; in
// supersampling mode it is four rays through the pixel's quadrant centers,
// meant to be traced and averaged.
func (c *Camera) RaysForPixel(px, py int) []core.Ray {
	if !c.cfg.Supersample {
		return []core.Ray{c.rayThrough(float64(px)+0.5, float64(py)+0.5)}
	}

	rays := make([]core.Ray, 0, 4)
	for _, oy := range [2]float64{0.25, 0.75} {
		for _, ox := range [2]float64{0.25, 0.75} {
			rays = append(rays, c.rayThrough(float64(px)+ox, float64(py)+oy))
		}
	}
	return rays
}

// Config returns the camera's configuration.
func (c *Camera) Config() Config {
	return c.cfg
}
