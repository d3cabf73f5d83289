package integrator

// Config carries the tunables the integrator reads at trace time: the
// recursion depth cap and the ray-offset epsilon. It is a plain struct
// with a constructor supplying defaults and a Merge method for overriding
// a subset of fields.
//
// KD-tree build parameters (leaf size, max depth, split mode) are not part
// of this Config: they are a property of how a World's tree was built
// (world.World.WithKDTreeParams), not of how a ray is shaded once traced,
// so they live there instead of being duplicated here.
type Config struct {
	MaxDepth int     // Recursion cap; trace returns background beyond this depth
	Epsilon  float64 // Ray-offset epsilon for shadow/reflection/refraction origins
}

// DefaultConfig returns the standard defaults: MaxDepth=5, Epsilon=1e-4.
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		Epsilon:  1e-4,
	}
}

// Merge returns a copy of cfg with every non-zero field of override applied
// on top: a caller can pass a partially-populated Config and only the
// fields they set replace the receiver's.
func (cfg Config) Merge(override Config) Config {
	merged := cfg
	if override.MaxDepth != 0 {
		merged.MaxDepth = override.MaxDepth
	}
	if override.Epsilon != 0 {
		merged.Epsilon = override.Epsilon
	}
	return merged
}
