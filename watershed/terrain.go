// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package watershed

import (
	"github.com/chewxy/math32"

	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/noise"
)

// GenerateTerrain implements mapgen.TerrainSource. Every column blends a
// continent/base/flat density base with sunk river valleys, mountains and
// a plateau override selected by 3D noise; the whole stack sits on a
// sea_y-centered density gradient. Magma vents optionally carve through
// solid terrain on high land.
func (g *Generator) GenerateTerrain() int32 {
	base := g.Base
	geom := base.Geometry
	data := g.lastData

	sy := geom.CSize.Y + 2 // 1-up 1-down overgeneration

	ventField := g.ventField
	continentField := g.continentField
	baseField := g.baseField
	flatField := g.flatField
	river1Field := g.river1Field
	river2AField := g.river2AField
	river2BField := g.river2BField
	mountainField := g.mountainField
	plateauField := g.plateauField
	platSelectField := g.platSelectField
	field3D := g.field3D

	ventField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	continentField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	baseField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	flatField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	river1Field.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	river2AField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	river2BField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	mountainField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	plateauField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	platSelectField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	field3D.FillMap3D(geom.NodeMin.X, geom.NodeMin.Y-1, geom.NodeMin.Z)

	densityGradCache := make([]float32, sy)
	for i := range densityGradCache {
		y := geom.NodeMin.Y - 1 + int32(i)
		densityGradCache[i] = (g.params.SeaY - float32(y)) / g.verticalScale
	}

	ventsEnabled := g.spflags&mapgen.WatershedVents != 0

	stoneMaxY := -mapgen.MaxMapGenerationLimit
	index2D := int32(0)
	ystride := field3D.YStride()
	zstride1u1d := field3D.ZStride1u1d()

	for z := geom.NodeMin.Z; z <= geom.NodeMax.Z; z++ {
		for x := geom.NodeMin.X; x <= geom.NodeMax.X; x++ {
			// Terrain base / riverbank level.
			nContinent := g.params.ContinentArea + math32.Abs(continentField.At(index2D))*2.0
			nContTanh := math32.Tanh(nContinent * 4.0)
			nBase := baseField.At(index2D)
			nTBase := nContTanh*0.6 + nBase*1.0 - 0.2

			nFlat := maxf32(flatField.At(index2D), 0.0)
			nBaseShaped := g.baseFlat
			switch {
			case nTBase < g.baseFlat:
				nBaseShaped = g.baseFlat - (g.baseFlat-nTBase)*0.2
			case nTBase > g.baseFlat+nFlat:
				nBaseShaped = g.baseFlat + math32.Pow(nTBase-(g.baseFlat+nFlat), 1.5)*1.4
			}

			// River valleys.
			nRiver1 := river1Field.At(index2D)
			nRiver1Abs := math32.Abs(nRiver1)
			var nRiver2 float32
			if nRiver1 > 0 {
				nRiver2 = river2AField.At(index2D)
			} else {
				nRiver2 = river2BField.At(index2D)
			}
			nRiver2Abs := math32.Abs(nRiver2)

			sink := (0.8 - nBaseShaped) * g.params.RiverWidth
			nValley1Sunk := nRiver1Abs - sink
			nValley2Sunk := nRiver2Abs - sink
			verp := math32.Tanh((nValley2Sunk-nValley1Sunk)*16.0)*0.5 + 0.5
			nValleySunk := verp*nValley1Sunk + (1.0-verp)*nValley2Sunk

			var nValleyShaped float32
			if nValleySunk > 0.0 {
				nValAmp := float32(0.0)
				blend := (nTBase - (g.baseFlat + nFlat)) / 0.3
				switch {
				case blend >= 1.0:
					nValAmp = 1.0
				case blend > 0.0:
					nValAmp = blend * blend * (3.0 - 2.0*blend)
				}
				nValleyShaped = math32.Pow(nValleySunk, 1.5) * nValAmp * 0.5
			} else {
				riverDepthShaped := g.params.RiverDepth
				if nBaseShaped < 0.0 {
					riverDepthShaped = maxf32(g.params.RiverDepth+nBaseShaped*4.0, 0.0)
				}
				nValleyShaped = -math32.Sqrt(-nValleySunk) * riverDepthShaped
			}

			// Mountains.
			nMountAmp := nBaseShaped - 0.8
			nMount := float32(-1000.0)
			if nMountAmp > 0.0 {
				nMountain := mountainField.At(index2D)
				nMount = nMountain * nMountAmp * nMountAmp * 1.0
			}

			// Plateaus.
			nLowland := nBaseShaped + maxf32(nValleyShaped, nMount)
			nPlateau := maxf32(plateauField.At(index2D), nLowland)
			nPlatSelect := platSelectField.At(index2D)
			nPlatSelCoast := (nTBase + 0.1) * 16.0
			nPlatSelCanyon := float32(-1000.0)
			if nValleySunk > 0 {
				nPlatSelCanyon = nBaseShaped + math32.Pow(nValleySunk, 3.0)*1024.0
			}

			// Magma vents.
			nVent := ventField.At(index2D)
			mod := maxf32(1.5-nTBase, 0.0)
			nVentShaped := nVent - mod*mod

			index3D := (z-geom.NodeMin.Z)*zstride1u1d + (x - geom.NodeMin.X)
			indexData := geom.Area().Index(x, geom.NodeMin.Y-1, z)

			for gradIdx := int32(0); gradIdx < sy; gradIdx++ {
				y := geom.NodeMin.Y - 1 + gradIdx

				if data.VoxelManip.Get(indexData) == mapgen.ContentIgnore {
					n3D := field3D.At(index3D)
					nSelect := minf32(minf32(nPlatSelect, nPlatSelCoast)+n3D*2.0, nPlatSelCanyon)
					nTerrain := noise.Clamp(nSelect, nLowland, nPlateau)
					densityGrad := densityGradCache[gradIdx]
					densityBase := nBaseShaped + densityGrad
					density := nTerrain + densityGrad

					switch {
					case density >= 0.0:
						ventWall := 0.05 + math32.Abs(n3D)*0.05
						switch {
						case ventsEnabled && nVentShaped >= -ventWall:
							switch {
							case nVentShaped > 0.0:
								if densityBase >= 0.0 {
									data.VoxelManip.Set(indexData, g.content.Lava)
								} else {
									data.VoxelManip.Set(indexData, mapgen.ContentAir)
								}
							default:
								cone := (nVentShaped + ventWall) / ventWall * 0.2
								if density >= cone {
									data.VoxelManip.Set(indexData, g.content.VolcanicRock)
								} else {
									data.VoxelManip.Set(indexData, mapgen.ContentAir)
								}
							}
						default:
							data.VoxelManip.Set(indexData, g.content.Stone)
							if y > stoneMaxY {
								stoneMaxY = y
							}
						}
					case y <= base.WaterLevel:
						data.VoxelManip.Set(indexData, g.content.Water)
					case densityBase >= g.params.RiverBank:
						data.VoxelManip.Set(indexData, g.content.RiverWater)
					default:
						data.VoxelManip.Set(indexData, mapgen.ContentAir)
					}
				}

				indexData = geom.AddY(indexData, 1)
				index3D += ystride
			}

			index2D++
		}
	}

	return stoneMaxY
}

func maxf32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
