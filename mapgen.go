// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mapgen holds the types shared by the Valleys and Watershed
// terrain generators: chunk geometry, the voxel/collaborator interfaces
// they borrow from the host engine, and the ordered post-terrain pipeline
// both generators drive identically.
package mapgen

import (
	"log"

	"github.com/voxelgen/mapgen/noise"
)

// VoxelBuffer is the dense 3D array of content ids terrain writes into.
// It is borrowed per call, never owned by the generator.
type VoxelBuffer interface {
	Get(index int32) ContentID
	Set(index int32, id ContentID)
}

// LiquidSink receives positions that need liquid-transform processing
// after terrain and decorations have been written.
type LiquidSink interface {
	Push(p Vec3i)
}

// BlockMakeData is the per-call input a host engine provides to MakeChunk.
type BlockMakeData struct {
	VoxelManip       VoxelBuffer
	NodeDef          NodeRegistry
	BlockposMin      Vec3i
	BlockposMax      Vec3i
	BlockposRequested Vec3i
	TransformingLiquid LiquidSink
}

// Flags is a generator capability/behavior bitmask (spflags in the
// original settings schema).
type Flags uint32

const (
	FlagBiomes Flags = 1 << iota
	FlagCaves
	FlagDungeons
	FlagDecorations
	FlagLight
)

// Valleys-specific flags.
const (
	ValleysAltChill Flags = 1 << iota
	ValleysHumidRivers
	ValleysVaryRiverDepth
	ValleysAltDry
	ValleysCanyons
)

// Watershed-specific flags.
const (
	WatershedVents Flags = 1 << iota
)

// BiomeGenerator is the external biome-mapping collaborator. Valleys
// mutates HeatAt/HumidAt in place during terrain generation; both
// generators read them back in GenerateBiomes.
type BiomeGenerator interface {
	CalcBiomeNoise(nodeMin Vec3i)
	HeatAt(index2D int32) float32
	SetHeatAt(index2D int32, v float32)
	HumidAt(index2D int32) float32
	SetHumidAt(index2D int32, v float32)
	GenerateBiomes()
	BiomeAtPoint(p Vec3i) Biome
}

// Biome is the subset of biome-record fields the dungeon placement and
// post-terrain passes consume.
type Biome struct {
	Stone            ContentID
	DungeonWall      ContentID // ContentIgnore if the biome has none
	DungeonStair     ContentID // ContentIgnore to fall back to DungeonWall
}

// CaveGenerator drives tunnel, cavern and randomwalk cave carving.
type CaveGenerator interface {
	GenerateCavesNoiseIntersection(stoneMaxY int32)
	// GenerateCavernsNoise returns whether a cavern was found near the
	// surface, which callers use to cap large-cave depth.
	GenerateCavernsNoise(stoneMaxY int32) (nearCavern bool)
	GenerateCavesRandomWalk(stoneMaxY, depth int32)
}

// OreManager places the registered ores over a chunk.
type OreManager interface {
	PlaceAllOres(blockseed uint32, nodeMin, nodeMax Vec3i)
}

// DecorationManager places the registered decorations over a chunk.
type DecorationManager interface {
	PlaceAllDecos(blockseed uint32, nodeMin, nodeMax Vec3i)
}

// DungeonGenerator carves dungeons into existing stone.
type DungeonGenerator interface {
	GenerateDungeons(stoneMaxY int32)
	// GenerateOneDungeon carves a single dungeon configured by dp,
	// bypassing the registered-biome-driven dungeon pass. Watershed uses
	// this for its oversized, density-noise-carved "big dungeon".
	GenerateOneDungeon(dp DungeonParams)
}

// DungeonParams configures a single dungeon carve, mirroring the upstream
// DungeonParams the host engine's DungeonGen consumes.
type DungeonParams struct {
	Seed            int64
	OnlyInGround    bool
	CorridorLenMin  int32
	CorridorLenMax  int32
	RoomsMin        int32
	RoomsMax        int32
	NPDensity       noise.Params
	CWall           ContentID
	CStair          ContentID
	CAltWall        ContentID // ContentIgnore disables alt-wall substitution
	DiagonalDirs    bool
	Holesize        Vec3i
	RoomSizeMin     Vec3i
	RoomSizeMax     Vec3i
	RoomSizeLargeMin Vec3i
	RoomSizeLargeMax Vec3i
}

// LightingCalculator runs the final lighting pass.
type LightingCalculator interface {
	CalcLighting(lightMin, lightMax, fullNodeMin, fullNodeMax Vec3i)
}

// HeightmapUpdater tracks the highest solid node per column.
type HeightmapUpdater interface {
	UpdateHeightmap(nodeMin, nodeMax Vec3i)
}

// DustTopper sprinkles biome-specific dust on exposed top nodes.
type DustTopper interface {
	DustTopNodes()
}

// LiquidUpdater propagates liquids after terrain and decorations settle.
type LiquidUpdater interface {
	UpdateLiquid(sink LiquidSink, fullNodeMin, fullNodeMax Vec3i)
}

// Collaborators bundles every external collaborator a Base pipeline needs.
// A generator constructs this once and hands it to Base.MakeChunk.
type Collaborators struct {
	Biome     BiomeGenerator
	Caves     CaveGenerator
	Ores      OreManager
	Decos     DecorationManager
	Dungeons  DungeonGenerator
	Light     LightingCalculator
	Heightmap HeightmapUpdater
	Dust      DustTopper
	Liquid    LiquidUpdater
}

func defaultLogger(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.Default()
}
