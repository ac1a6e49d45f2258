// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"github.com/aquilax/go-perlin"
)

// Field is a Params bound to a world seed and an expected sample-grid
// size, owning a result buffer of floats. Eval2D/Eval3D are one-shot
// point evaluations; FillMap2D/FillMap3D fill the owned buffer for a
// rectangular grid. Field never reallocates its buffer after
// construction: repeated FillMap calls overwrite result in place.
type Field struct {
	params    Params
	lattice   *perlin.Perlin
	sx, sy, sz int32
	result    []float32
	is3D      bool
}

// New2D builds a Field sized for a sx*sz 2D grid.
func New2D(params Params, worldSeed int64, sx, sz int32) *Field {
	return &Field{
		params:  params,
		lattice: perlin.NewPerlin(1, 2, 1, latticeSeed(params, worldSeed)),
		sx:      sx,
		sz:      sz,
		result:  make([]float32, sx*sz),
	}
}

// New3D builds a Field sized for a sx*sy*sz 3D grid.
func New3D(params Params, worldSeed int64, sx, sy, sz int32) *Field {
	return &Field{
		params:  params,
		lattice: perlin.NewPerlin(1, 2, 1, latticeSeed(params, worldSeed)),
		sx:      sx,
		sy:      sy,
		sz:      sz,
		result:  make([]float32, sx*sy*sz),
		is3D:    true,
	}
}

func latticeSeed(params Params, worldSeed int64) int64 {
	return worldSeed + int64(params.SeedSalt)
}

// Params returns the parameter set this field was constructed with.
func (f *Field) Params() Params { return f.params }

// YStride is the index step for a single +1 step along Y inside a filled
// 3D grid (the "ystride" in the column Y loop).
func (f *Field) YStride() int32 { return f.sx }

// ZStride1u1d is the index step for a single +1 step along Z inside a
// filled 3D grid whose Y extent already includes the 1-up-1-down
// overgeneration halo (sx * sy).
func (f *Field) ZStride1u1d() int32 { return f.sx * f.sy }

// Eval2D is a one-shot evaluation at absolute world (x, z).
func (f *Field) Eval2D(x, z int32) float32 {
	return f.sample(float64(x), 0, float64(z), false)
}

// Eval3D is a one-shot evaluation at absolute world (x, y, z).
func (f *Field) Eval3D(x, y, z int32) float32 {
	return f.sample(float64(x), float64(y), float64(z), true)
}

// FillMap2D fills result with a sx*sz grid starting at (originX, originZ);
// index = (z-originZ)*sx + (x-originX).
func (f *Field) FillMap2D(originX, originZ int32) {
	i := 0
	for z := originZ; z < originZ+f.sz; z++ {
		for x := originX; x < originX+f.sx; x++ {
			f.result[i] = f.sample(float64(x), 0, float64(z), false)
			i++
		}
	}
}

// FillMap3D fills result with a sx*sy*sz grid starting at (originX,
// originY, originZ); index = ((z-originZ)*sy + (y-originY))*sx + (x-originX).
func (f *Field) FillMap3D(originX, originY, originZ int32) {
	i := 0
	for z := originZ; z < originZ+f.sz; z++ {
		for y := originY; y < originY+f.sy; y++ {
			for x := originX; x < originX+f.sx; x++ {
				f.result[i] = f.sample(float64(x), float64(y), float64(z), true)
				i++
			}
		}
	}
}

// At returns result[i] from the last FillMap2D/FillMap3D call.
func (f *Field) At(i int32) float32 {
	return f.result[i]
}

// sample performs the octave sum: Σ aᵢ·noise(p·fᵢ), fᵢ = lacunarity^i /
// spread, aᵢ = persistence^i, then scale and offset.
func (f *Field) sample(x, y, z float64, use3D bool) float32 {
	p := f.params
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0

	for o := int32(0); o < p.Octaves; o++ {
		nx := x * frequency / float64(p.Spread.X)
		nz := z * frequency / float64(p.Spread.Z)

		var n float64
		if use3D {
			ny := y * frequency / float64(p.Spread.Y)
			if p.Flags&FlagEased != 0 {
				nx, ny, nz = easeCoord(nx), easeCoord(ny), easeCoord(nz)
			}
			n = f.lattice.Noise3D(nx, ny, nz)
		} else {
			if p.Flags&FlagEased != 0 {
				nx, nz = easeCoord(nx), easeCoord(nz)
			}
			n = f.lattice.Noise2D(nx, nz)
		}

		if p.Flags&FlagAbsValue != 0 {
			n = absFloat64(n)
		}

		sum += n * amplitude
		amplitude *= float64(p.Persistence)
		frequency *= float64(p.Lacunarity)
	}

	return float32(sum)*p.Scale + p.Offset
}
