// Package planets models the solar system's planets as a closed set of
// values with derived surface physics. The set is fixed at package init;
// there is no way to construct a ninth planet from outside.
package planets

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// G is the universal gravitational constant, in m^3 kg^-1 s^-2.
const G = 6.67300e-11

// Planet is one member of the closed planet set. The zero value is not a
// valid planet; use the package-level variables or Lookup.
type Planet struct {
	name   string
	mass   float64 // kilograms
	radius float64 // meters
}

// The only planets that exist, in order of distance from the sun.
var (
	Mercury = Planet{"Mercury", 3.303e23, 2.4397e6}
	Venus   = Planet{"Venus", 4.869e24, 6.0518e6}
	Earth   = Planet{"Earth", 5.976e24, 6.37814e6}
	Mars    = Planet{"Mars", 6.421e23, 3.3972e6}
	Jupiter = Planet{"Jupiter", 1.9e27, 7.1492e7}
	Saturn  = Planet{"Saturn", 5.688e26, 6.0268e7}
	Uranus  = Planet{"Uranus", 8.686e25, 2.5559e7}
	Neptune = Planet{"Neptune", 1.024e26, 2.4746e7}
)

// registry maps lowercase planet name to planet, preserving declaration
// order so that All and Names list planets sun-outward.
var registry = orderedmap.New[string, Planet]()

func init() {
	for _, p := range []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune} {
		registry.Set(strings.ToLower(p.name), p)
	}
}

// Name returns the planet's name.
func (p Planet) Name() string {
	return p.name
}

// Mass returns the planet's mass in kilograms.
func (p Planet) Mass() float64 {
	return p.mass
}

// Radius returns the planet's radius in meters.
func (p Planet) Radius() float64 {
	return p.radius
}

// SurfaceGravity returns the gravitational acceleration at the planet's
// surface, in m/s^2.
func (p Planet) SurfaceGravity() float64 {
	return G * p.mass / (p.radius * p.radius)
}

// SurfaceWeight returns the weight of a body of the given mass (kilograms)
// at the planet's surface, in newtons.
func (p Planet) SurfaceWeight(otherMass float64) float64 {
	return otherMass * p.SurfaceGravity()
}

// String returns the planet's name.
func (p Planet) String() string {
	return p.name
}

// Lookup returns the planet with the given name, case-insensitively.
func Lookup(name string) (Planet, bool) {
	return registry.Get(strings.ToLower(name))
}

// All returns the planets in order of distance from the sun.
func All() []Planet {
	out := make([]Planet, 0, registry.Len())
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

// Names returns the planet names in order of distance from the sun.
func Names() []string {
	out := make([]string, 0, registry.Len())
	for pair := registry.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.name)
	}
	return out
}

// MassForEarthWeight converts a weight measured on Earth's surface into the
// body's mass, for computing the same body's weight elsewhere.
func MassForEarthWeight(earthWeight float64) float64 {
	return earthWeight / Earth.SurfaceGravity()
}
