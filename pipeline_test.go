// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapgen

import "testing"

type orderedVoxels struct{ cells map[int32]ContentID }

func newOrderedVoxels() *orderedVoxels { return &orderedVoxels{cells: make(map[int32]ContentID)} }
func (v *orderedVoxels) Get(i int32) ContentID       { return v.cells[i] }
func (v *orderedVoxels) Set(i int32, id ContentID)   { v.cells[i] = id }

type recordingSource struct {
	log             *[]string
	stoneMaxY       int32
	postTerrain     bool
	biomeTiming     BiomeNoiseTiming
}

func (s *recordingSource) GenerateTerrain() int32 {
	*s.log = append(*s.log, "terrain")
	return s.stoneMaxY
}
func (s *recordingSource) BiomeNoiseTiming() BiomeNoiseTiming { return s.biomeTiming }
func (s *recordingSource) RunPostTerrainPasses() bool         { return s.postTerrain }
func (s *recordingSource) PlaceDungeons(stoneMaxY int32)      { *s.log = append(*s.log, "dungeons") }

type recordingBiome struct{ log *[]string }

func (b recordingBiome) CalcBiomeNoise(nodeMin Vec3i) { *b.log = append(*b.log, "biome_noise") }
func (b recordingBiome) HeatAt(i int32) float32        { return 0 }
func (b recordingBiome) SetHeatAt(i int32, v float32)  {}
func (b recordingBiome) HumidAt(i int32) float32       { return 0 }
func (b recordingBiome) SetHumidAt(i int32, v float32) {}
func (b recordingBiome) GenerateBiomes()               { *b.log = append(*b.log, "biomes") }
func (b recordingBiome) BiomeAtPoint(p Vec3i) Biome    { return Biome{} }

type recordingCaves struct{ log *[]string }

func (c recordingCaves) GenerateCavesNoiseIntersection(stoneMaxY int32) {
	*c.log = append(*c.log, "tunnels")
}
func (c recordingCaves) GenerateCavernsNoise(stoneMaxY int32) bool {
	*c.log = append(*c.log, "caverns")
	return false
}
func (c recordingCaves) GenerateCavesRandomWalk(stoneMaxY, depth int32) {
	*c.log = append(*c.log, "randomwalk")
}

type recordingOres struct{ log *[]string }

func (o recordingOres) PlaceAllOres(blockseed uint32, nodeMin, nodeMax Vec3i) {
	*o.log = append(*o.log, "ores")
}

type recordingDecos struct{ log *[]string }

func (d recordingDecos) PlaceAllDecos(blockseed uint32, nodeMin, nodeMax Vec3i) {
	*d.log = append(*d.log, "decorations")
}

type recordingDust struct{ log *[]string }

func (d recordingDust) DustTopNodes() { *d.log = append(*d.log, "dust") }

type recordingLiquid struct{ log *[]string }

func (l recordingLiquid) UpdateLiquid(sink LiquidSink, fullNodeMin, fullNodeMax Vec3i) {
	*l.log = append(*l.log, "liquid")
}

type recordingLight struct{ log *[]string }

func (l recordingLight) CalcLighting(lightMin, lightMax, fullNodeMin, fullNodeMax Vec3i) {
	*l.log = append(*l.log, "light")
}

type recordingHeightmap struct{ log *[]string }

func (h recordingHeightmap) UpdateHeightmap(nodeMin, nodeMax Vec3i) {
	*h.log = append(*h.log, "heightmap")
}

type nopLiquidSink struct{}

func (nopLiquidSink) Push(p Vec3i) {}

func TestMakeChunk_FullPipelineOrder(t *testing.T) {
	var log []string
	base := &Base{
		Flags:      FlagBiomes | FlagCaves | FlagDungeons | FlagDecorations | FlagLight,
		WaterLevel: 1,
		Collaborators: Collaborators{
			Biome:     recordingBiome{&log},
			Caves:     recordingCaves{&log},
			Ores:      recordingOres{&log},
			Decos:     recordingDecos{&log},
			Dust:      recordingDust{&log},
			Liquid:    recordingLiquid{&log},
			Light:     recordingLight{&log},
			Heightmap: recordingHeightmap{&log},
		},
	}
	src := &recordingSource{log: &log, postTerrain: true, biomeTiming: BiomeNoiseAfterTerrain}

	block := Vec3i{X: 0, Y: 0, Z: 0}
	data := BlockMakeData{
		VoxelManip:         newOrderedVoxels(),
		NodeDef:            fakeRegistry{},
		BlockposMin:        block,
		BlockposMax:        block,
		BlockposRequested:  block,
		TransformingLiquid: nopLiquidSink{},
	}
	base.MakeChunk(data, src)

	want := []string{
		"terrain", "heightmap", "biome_noise", "biomes",
		"tunnels", "caverns", "randomwalk", "ores", "dungeons",
		"decorations", "dust", "liquid", "light",
	}
	if len(log) != len(want) {
		t.Fatalf("pipeline order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("pipeline order = %v, want %v", log, want)
		}
	}
}

func TestMakeChunk_ScaledModeSkipsEverythingButLiquidAndLight(t *testing.T) {
	var log []string
	base := &Base{
		Flags: FlagBiomes | FlagCaves | FlagDungeons | FlagDecorations | FlagLight,
		Collaborators: Collaborators{
			Biome:     recordingBiome{&log},
			Caves:     recordingCaves{&log},
			Ores:      recordingOres{&log},
			Decos:     recordingDecos{&log},
			Dust:      recordingDust{&log},
			Liquid:    recordingLiquid{&log},
			Light:     recordingLight{&log},
			Heightmap: recordingHeightmap{&log},
		},
	}
	src := &recordingSource{log: &log, postTerrain: false, biomeTiming: BiomeNoiseAfterTerrain}

	block := Vec3i{X: 0, Y: 0, Z: 0}
	data := BlockMakeData{
		VoxelManip:         newOrderedVoxels(),
		NodeDef:            fakeRegistry{},
		BlockposMin:        block,
		BlockposMax:        block,
		BlockposRequested:  block,
		TransformingLiquid: nopLiquidSink{},
	}
	base.MakeChunk(data, src)

	for _, entry := range log {
		switch entry {
		case "terrain", "liquid", "light":
		default:
			t.Fatalf("scaled mode ran a post-terrain pass it should have skipped: %v", log)
		}
	}
	if log[0] != "terrain" {
		t.Fatalf("expected terrain to run first, got %v", log)
	}
}

func TestMakeChunk_PanicsOnNilVoxelManip(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil VoxelManip")
		}
	}()
	var log []string
	base := &Base{}
	src := &recordingSource{log: &log, postTerrain: true}
	block := Vec3i{X: 0, Y: 0, Z: 0}
	base.MakeChunk(BlockMakeData{
		NodeDef:           fakeRegistry{},
		BlockposMin:       block,
		BlockposMax:       block,
		BlockposRequested: block,
	}, src)
}

func TestMakeChunk_PanicsOnOutOfBoundsRequested(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-bounds blockpos_requested")
		}
	}()
	var log []string
	base := &Base{}
	src := &recordingSource{log: &log, postTerrain: true}
	base.MakeChunk(BlockMakeData{
		VoxelManip:        newOrderedVoxels(),
		NodeDef:           fakeRegistry{},
		BlockposMin:       Vec3i{X: 0, Y: 0, Z: 0},
		BlockposMax:       Vec3i{X: 0, Y: 0, Z: 0},
		BlockposRequested: Vec3i{X: 5, Y: 0, Z: 0},
	}, src)
}
