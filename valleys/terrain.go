// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package valleys

import (
	"github.com/chewxy/math32"

	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/noise"
)

// GenerateTerrain implements mapgen.TerrainSource. It shapes every column
// in [NodeMin, NodeMax] by sinking a terrain-height field with a valley
// carved by river noise, then fills each column from NodeMin.Y-1 to
// NodeMax.Y+1 against whatever the voxel buffer doesn't already hold
// (CONTENT_IGNORE is the only cell terrain is allowed to overwrite).
func (g *Generator) GenerateTerrain() int32 {
	base := g.Base
	geom := base.Geometry
	data := g.lastData

	slopeField := g.slopeField
	heightField := g.heightField
	depthField := g.depthField
	profileField := g.profileField
	fillField := g.fillField
	rivers2D := g.rivers2D
	rivers3D := g.rivers3D
	canyons := g.spflags&mapgen.ValleysCanyons != 0

	slopeField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	heightField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	depthField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	profileField.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)

	if canyons {
		rivers3D.FillMap3D(geom.NodeMin.X, geom.NodeMin.Y-1, geom.NodeMin.Z)
	} else {
		rivers2D.FillMap2D(geom.NodeMin.X, geom.NodeMin.Z)
	}

	fillField.FillMap3D(geom.NodeMin.X, geom.NodeMin.Y-1, geom.NodeMin.Z)

	varyRiverDepth := g.spflags&mapgen.ValleysVaryRiverDepth != 0
	altChill := g.spflags&mapgen.ValleysAltChill != 0
	humidRivers := g.spflags&mapgen.ValleysHumidRivers != 0
	altDry := g.spflags&mapgen.ValleysAltDry != 0

	biome := base.Collaborators.Biome

	surfaceMaxY := -mapgen.MaxMapGenerationLimit
	index2D := int32(0)
	ystride := fillField.YStride()
	zstride1u1d := fillField.ZStride1u1d()

	for z := geom.NodeMin.Z; z <= geom.NodeMax.Z; z++ {
		for x := geom.NodeMin.X; x <= geom.NodeMax.X; x++ {
			nSlope := slopeField.At(index2D)
			nHeight := heightField.At(index2D)
			nValley := depthField.At(index2D)
			nProfile := profileField.At(index2D)

			valleyD := nValley * nValley
			colBase := nHeight + valleyD
			surfaceY := colBase
			slope := float32(0)

			var nRivers2D float32
			if !canyons {
				nRivers2D = rivers2D.At(index2D)
				valleyH := g.getValleyHeight(nRivers2D, valleyD, nProfile)
				surfaceY = colBase + valleyH
				if valleyH < 0 && surfaceY < float32(base.WaterLevel)-3 {
					surfaceY = minf32(colBase, float32(base.WaterLevel)-3)
				}
				slope = nSlope * maxf32(valleyH, 0)
			}

			riverY := colBase - 1.0

			if varyRiverDepth && biome != nil {
				tHeat := biome.HeatAt(index2D)
				var heat float32
				if altChill {
					heat = tHeat + 5 - (colBase-float32(base.WaterLevel))*20/float32(g.params.AltitudeChill)
				} else {
					heat = tHeat
				}
				delta := biome.HumidAt(index2D) - 50
				if delta < 0 {
					tEvap := (heat - 32) / 300
					riverY += delta * maxf32(tEvap, 0.08)
				}
			}

			columnMaxY := int32(surfaceY)
			index3D := (z-geom.NodeMin.Z)*zstride1u1d + (x - geom.NodeMin.X)
			indexData := geom.Area().Index(x, geom.NodeMin.Y-1, z)

			for y := geom.NodeMin.Y - 1; y <= geom.NodeMax.Y+1; y++ {
				if data.VoxelManip.Get(indexData) == mapgen.ContentIgnore {
					if canyons {
						nRiversHere := rivers3D.At(index3D)
						valleyH := g.getValleyHeight(nRiversHere, valleyD, nProfile)
						surfaceY = colBase + valleyH
						if valleyH < 0 && surfaceY < float32(base.WaterLevel)-3 {
							surfaceY = minf32(colBase, float32(base.WaterLevel)-3)
						}
						slope = nSlope * valleyH
					}

					nFill := fillField.At(index3D)
					surfaceDelta := float32(y) - surfaceY
					density := slope*nFill - surfaceDelta

					switch {
					case density > 0:
						data.VoxelManip.Set(indexData, g.content.Stone)
						if y > surfaceMaxY {
							surfaceMaxY = y
						}
						if y > columnMaxY {
							columnMaxY = y
						}
					case y <= base.WaterLevel:
						data.VoxelManip.Set(indexData, g.content.Water)
					case y <= int32(riverY):
						data.VoxelManip.Set(indexData, g.content.RiverWater)
					default:
						data.VoxelManip.Set(indexData, mapgen.ContentAir)
					}
				}

				indexData = geom.AddY(indexData, 1)
				index3D += ystride
			}

			if biome != nil && humidRivers {
				humid := biome.HumidAt(index2D) * 0.8
				tAlt := maxf32(colBase, float32(columnMaxY))
				waterDepth := (tAlt - colBase) / 4
				humid *= 1 + math32.Pow(0.5, maxf32(waterDepth, 1))
				biome.SetHumidAt(index2D, humid)
			}

			if biome != nil && altDry {
				tAlt := maxf32(colBase, float32(columnMaxY))
				if tAlt > float32(base.WaterLevel) {
					humid := biome.HumidAt(index2D) - (tAlt-float32(base.WaterLevel))*10/float32(g.params.AltitudeChill)
					biome.SetHumidAt(index2D, humid)
				}
			}

			if biome != nil && altChill {
				heat := biome.HeatAt(index2D) + 5
				tAlt := maxf32(colBase, float32(columnMaxY))
				if tAlt > float32(base.WaterLevel) {
					heat -= (tAlt - float32(base.WaterLevel)) * 20 / float32(g.params.AltitudeChill)
				}
				biome.SetHeatAt(index2D, heat)
			}

			index2D++
		}
	}

	return surfaceMaxY
}

// getValleyHeight models a valley's cross-section: a river channel
// dipping below colBase near the river line (the -sqrt(1-x^2) branch)
// widening into 1-exp(-(x/a)^2) terrain rising away from it.
func (g *Generator) getValleyHeight(nRivers, valleyD, valleyProfile float32) float32 {
	river := math32.Abs(nRivers) - g.riverSizeFactor
	if river > 0 {
		tv := maxf32(river/valleyProfile, 0)
		return valleyD * (1 - math32.Exp(-tv*tv))
	}
	tr := noise.Clamp(river/g.riverSizeFactor+1, -1, 1)
	return -(g.riverDepthBed * math32.Sqrt(1-tr*tr))
}

// GetSpawnLevelAtPoint returns the first suitable surface y at a 2D
// world point, or mapgen.MaxMapGenerationLimit if none qualifies (inside
// a river channel, below water, or below the river-water surface).
func (g *Generator) GetSpawnLevelAtPoint(p mapgen.Vec2i) int32 {
	seed := g.Base.WorldSeed

	rivers := noise.New2D(g.params.NPRivers, seed, 1, 1)
	nRivers := rivers.Eval2D(p.X, p.Z)
	if math32.Abs(nRivers) <= g.riverSizeFactor {
		return mapgen.MaxMapGenerationLimit
	}

	slope := noise.New2D(g.params.NPInterValleySlope, seed, 1, 1)
	height := noise.New2D(g.params.NPTerrainHeight, seed, 1, 1)
	depth := noise.New2D(g.params.NPValleyDepth, seed, 1, 1)
	profile := noise.New2D(g.params.NPValleyProfile, seed, 1, 1)

	nSlope := slope.Eval2D(p.X, p.Z)
	nHeight := height.Eval2D(p.X, p.Z)
	nValley := depth.Eval2D(p.X, p.Z)
	nProfile := profile.Eval2D(p.X, p.Z)

	valleyD := nValley * nValley
	colBase := nHeight + valleyD
	river := math32.Abs(nRivers) - g.riverSizeFactor
	tv := maxf32(river/nProfile, 0)
	valleyH := valleyD * (1 - math32.Exp(-tv*tv))
	surfaceY := colBase + valleyH
	columnSlope := nSlope * valleyH
	riverY := colBase - 1

	maxSpawnY := maxf32(
		height.Params().Offset+depth.Params().Offset*depth.Params().Offset,
		float32(g.Base.WaterLevel+16),
	)

	fill := noise.New3D(g.params.NPInterValleyFill, seed, 1, 1, 1)

	for y := int32(maxSpawnY) + 128; y >= g.Base.WaterLevel; y-- {
		nFill := fill.Eval3D(p.X, y, p.Z)
		surfaceDelta := float32(y) - surfaceY
		density := columnSlope*nFill - surfaceDelta

		if density > 0 {
			if y < g.Base.WaterLevel || float32(y) > maxSpawnY || y < int32(riverY) {
				return mapgen.MaxMapGenerationLimit
			}
			return y + 2
		}
	}
	return mapgen.MaxMapGenerationLimit
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
