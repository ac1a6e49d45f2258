// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package noise composes coherent gradient noise into the multi-octave
// fields the terrain generators sample. It wraps a single-octave lattice
// primitive (github.com/aquilax/go-perlin) and performs its own octave
// summation so every axis of spread, persistence, lacunarity and the
// eased/abs-value toggles stay under caller control.
package noise

// Flag is a bitmask of per-field noise behaviors.
type Flag uint32

const (
	// FlagEased enables a quintic-smoothstep warp of the lattice-local
	// fractional coordinate before sampling; the library's own
	// interpolation still applies to the warped coordinate.
	FlagEased Flag = 1 << iota
	// FlagAbsValue takes the absolute value of each octave before it is
	// weighted into the sum.
	FlagAbsValue
	// FlagDefaults marks a parameter set as using default interpolation
	// and octave sign handling; it carries no behavior of its own and
	// exists so a flag string round-trips even when nothing else is set.
	FlagDefaults
)

// Spread is the per-axis noise wavelength.
type Spread struct {
	X, Y, Z float32
}

// DivScalar returns a copy of s with every axis divided by d.
func (s Spread) DivScalar(d float32) Spread {
	return Spread{s.X / d, s.Y / d, s.Z / d}
}

// Params is an immutable noise parameter set: value semantics throughout,
// never mutated through a pointer receiver. A scaled copy (Watershed's
// div != 1 case) is produced by taking a new Params by value.
type Params struct {
	Offset      float32
	Scale       float32
	Spread      Spread
	SeedSalt    int32
	Octaves     int32
	Persistence float32
	Lacunarity  float32
	Flags       Flag
}
