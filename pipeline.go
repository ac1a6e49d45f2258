// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapgen

import "log"

// MaxMapGenerationLimit is the sentinel representing the world's finite
// vertical extent and otherwise-unreachable coordinates.
const MaxMapGenerationLimit int32 = 31000

// BiomeNoiseTiming selects when a TerrainSource wants its biome generator's
// heat/humidity noise calculated relative to GenerateTerrain.
type BiomeNoiseTiming int

const (
	// BiomeNoiseBeforeTerrain matches Valleys: terrain reads and mutates
	// heat/humidity while shaping the column, so the noise must already
	// be calculated.
	BiomeNoiseBeforeTerrain BiomeNoiseTiming = iota
	// BiomeNoiseAfterTerrain matches Watershed: biome noise is only
	// needed for the (gated) post-terrain passes.
	BiomeNoiseAfterTerrain
)

// TerrainSource is implemented by each terrain variant (Valleys,
// Watershed) and driven by Base.MakeChunk.
type TerrainSource interface {
	// GenerateTerrain writes stone/air/water/river/magma into the
	// chunk bound by the Base this source embeds, and returns the
	// highest y at which stone was written.
	GenerateTerrain() int32
	BiomeNoiseTiming() BiomeNoiseTiming
	// RunPostTerrainPasses reports whether biomes, caves, ores,
	// dungeons, decorations, dust and heightmap updates should run
	// this call. Valleys always returns true; Watershed returns
	// div == 1.
	RunPostTerrainPasses() bool
	// PlaceDungeons encapsulates the variant's own y-bound gating and
	// any variant-specific dungeon configuration.
	PlaceDungeons(stoneMaxY int32)
}

// Base implements the shared post-terrain pipeline (§4.5) common to both
// terrain variants. Embed it in a concrete generator, which supplies the
// variant-specific behavior via TerrainSource.
type Base struct {
	Flags          Flags
	WorldSeed      int64
	WaterLevel     int32
	LargeCaveDepth int32
	Collaborators  Collaborators
	Logger         *log.Logger

	// Set by MakeChunk for the duration of the call; valid to read from
	// TerrainSource methods invoked by it.
	Geometry  ChunkGeometry
	Blockseed uint32

	generating bool
}

// Generating reports whether a MakeChunk call is currently in flight on
// this generator instance. Purely observational.
func (b *Base) Generating() bool {
	return b.generating
}

// MakeChunk drives the ordered pipeline in spec §4.5 / §4.4's watershed
// variant. Precondition violations panic: they are programmer errors.
func (b *Base) MakeChunk(data BlockMakeData, src TerrainSource) {
	if data.VoxelManip == nil {
		panic("mapgen: MakeChunk called with nil VoxelManip")
	}
	if data.NodeDef == nil {
		panic("mapgen: MakeChunk called with nil NodeDef")
	}
	if !InBounds(data.BlockposRequested, data.BlockposMin, data.BlockposMax) {
		panic("mapgen: blockpos_requested outside [blockpos_min, blockpos_max]")
	}

	logger := defaultLogger(b.Logger)

	b.generating = true
	defer func() {
		b.generating = false
		if r := recover(); r != nil {
			logger.Printf("mapgen: panic during MakeChunk: %v", r)
			panic(r)
		}
	}()

	geom := NewChunkGeometry(data.BlockposMin, data.BlockposMax)
	b.Geometry = geom
	b.Blockseed = BlockSeed(geom.FullNodeMin, b.WorldSeed)

	if src.BiomeNoiseTiming() == BiomeNoiseBeforeTerrain && b.Collaborators.Biome != nil {
		b.Collaborators.Biome.CalcBiomeNoise(geom.NodeMin)
	}

	stoneMaxY := src.GenerateTerrain()

	if !src.RunPostTerrainPasses() {
		b.updateLiquidAndLight(data, geom)
		return
	}

	if b.Collaborators.Heightmap != nil {
		b.Collaborators.Heightmap.UpdateHeightmap(geom.NodeMin, geom.NodeMax)
	}

	if src.BiomeNoiseTiming() == BiomeNoiseAfterTerrain && b.Collaborators.Biome != nil {
		b.Collaborators.Biome.CalcBiomeNoise(geom.NodeMin)
	}

	if b.Flags&FlagBiomes != 0 && b.Collaborators.Biome != nil {
		b.Collaborators.Biome.GenerateBiomes()
	}

	if b.Flags&FlagCaves != 0 && b.Collaborators.Caves != nil {
		// Tunnels first: caverns confuse tunnel carving if run first.
		b.Collaborators.Caves.GenerateCavesNoiseIntersection(stoneMaxY)
		nearCavern := b.Collaborators.Caves.GenerateCavernsNoise(stoneMaxY)
		if nearCavern {
			// Disable large randomwalk caves this chunk: avoids
			// excessive liquid pooling in large caverns.
			b.Collaborators.Caves.GenerateCavesRandomWalk(stoneMaxY, -MaxMapGenerationLimit)
		} else {
			b.Collaborators.Caves.GenerateCavesRandomWalk(stoneMaxY, b.largeCaveDepth())
		}
	}

	if b.Collaborators.Ores != nil {
		b.Collaborators.Ores.PlaceAllOres(b.Blockseed, geom.NodeMin, geom.NodeMax)
	}

	if b.Flags&FlagDungeons != 0 {
		src.PlaceDungeons(stoneMaxY)
	}

	if b.Flags&FlagDecorations != 0 && b.Collaborators.Decos != nil {
		b.Collaborators.Decos.PlaceAllDecos(b.Blockseed, geom.NodeMin, geom.NodeMax)
	}

	if b.Flags&FlagBiomes != 0 && b.Collaborators.Dust != nil {
		b.Collaborators.Dust.DustTopNodes()
	}

	b.updateLiquidAndLight(data, geom)
}

func (b *Base) updateLiquidAndLight(data BlockMakeData, geom ChunkGeometry) {
	if b.Collaborators.Liquid != nil {
		b.Collaborators.Liquid.UpdateLiquid(data.TransformingLiquid, geom.FullNodeMin, geom.FullNodeMax)
	}
	if b.Flags&FlagLight != 0 && b.Collaborators.Light != nil {
		b.Collaborators.Light.CalcLighting(
			geom.NodeMin.Add(Vec3i{Y: -1}),
			geom.NodeMax.Add(Vec3i{Y: 1}),
			geom.FullNodeMin,
			geom.FullNodeMax,
		)
	}
}

func (b *Base) largeCaveDepth() int32 {
	return b.LargeCaveDepth
}

