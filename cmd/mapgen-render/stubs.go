// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import "github.com/voxelgen/mapgen"

// stubRegistry resolves the fixed content ids the render tool colors by
// height rather than by node identity.
type stubRegistry struct{}

func (stubRegistry) ResolveNodeID(name string) mapgen.ContentID {
	switch name {
	case "mapgen_stone":
		return 2
	case "mapgen_water_source":
		return 3
	case "mapgen_river_water_source":
		return 4
	case "mapgen_lava_source":
		return 5
	case "mapgen_volcanic_rock":
		return 6
	}
	return mapgen.ContentIgnore
}

// stubBiome satisfies mapgen.BiomeGenerator with no-ops: the render tool
// only cares about the height ramp, not biome-specific node placement.
type stubBiome struct{}

func (stubBiome) CalcBiomeNoise(nodeMin mapgen.Vec3i)      {}
func (stubBiome) HeatAt(i int32) float32                   { return 50 }
func (stubBiome) SetHeatAt(i int32, v float32)              {}
func (stubBiome) HumidAt(i int32) float32                  { return 50 }
func (stubBiome) SetHumidAt(i int32, v float32)             {}
func (stubBiome) GenerateBiomes()                          {}
func (stubBiome) BiomeAtPoint(p mapgen.Vec3i) mapgen.Biome { return mapgen.Biome{} }

type stubLiquid struct{}

func (stubLiquid) Push(p mapgen.Vec3i) {}

// recordingVoxels is a dense in-memory VoxelBuffer sized to exactly one
// VoxelArea, built fresh per render.
type recordingVoxels struct {
	area  mapgen.VoxelArea
	cells []mapgen.ContentID
}

func newRecordingVoxels() *recordingVoxels {
	return &recordingVoxels{}
}

func (v *recordingVoxels) bindArea(area mapgen.VoxelArea) {
	v.area = area
	extent := area.MaxEdge.Sub(area.MinEdge).AddScalar(1)
	v.cells = make([]mapgen.ContentID, extent.X*extent.Y*extent.Z)
}

func (v *recordingVoxels) Get(i int32) mapgen.ContentID { return v.cells[i] }

func (v *recordingVoxels) Set(i int32, id mapgen.ContentID) { v.cells[i] = id }

// topSolidY scans downward from the area's max Y and returns the first y
// at which the column holds neither air nor ignore, or the area's min Y
// if the column is entirely open.
func (v *recordingVoxels) topSolidY(area mapgen.VoxelArea, x, z int32) int32 {
	for y := area.MaxEdge.Y; y >= area.MinEdge.Y; y-- {
		id := v.cells[area.Index(x, y, z)]
		if id != mapgen.ContentIgnore && id != mapgen.ContentAir {
			return y
		}
	}
	return area.MinEdge.Y
}
