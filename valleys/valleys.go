// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package valleys implements the Valleys terrain variant: river-carved
// terrain shaped from a terrain-height field sunk by a valley-depth/
// valley-profile pair, with rivers following either a 2D channel noise
// (normal) or a 3D one (the "canyons" flag).
package valleys

import (
	"log"

	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/noise"
	"github.com/voxelgen/mapgen/paramstore"
)

// Config bundles the inputs New needs beyond the tunable parameters.
type Config struct {
	WorldSeed  int64
	WaterLevel int32
	Flags      mapgen.Flags // shared pipeline flags: biomes/caves/dungeons/decorations/light

	// ChunkSizeBlocks is the mapgen chunk edge length in blocks (the
	// world's chunksize setting); every MakeChunk call on the resulting
	// Generator must request a block span of exactly this size. Noise
	// fields are sized from it once, here, and never reallocated.
	ChunkSizeBlocks int32

	Collaborators mapgen.Collaborators
	Logger        *log.Logger
	Params        paramstore.ValleysParams
}

// Generator implements mapgen.TerrainSource for the Valleys algorithm.
type Generator struct {
	*mapgen.Base

	spflags mapgen.Flags
	params  paramstore.ValleysParams
	content mapgen.ResolvedContent

	riverDepthBed   float32
	riverSizeFactor float32

	// Noise fields are allocated once at construction, sized from the
	// chunk's node extent, and refilled in place on every GenerateTerrain
	// call: FillMap2D/FillMap3D overwrite their owned result buffers
	// rather than reallocating them per chunk.
	slopeField   *noise.Field
	heightField  *noise.Field
	depthField   *noise.Field
	profileField *noise.Field
	fillField    *noise.Field
	rivers2D     *noise.Field // nil when the canyons flag is set
	rivers3D     *noise.Field // nil unless the canyons flag is set

	// lastData holds the BlockMakeData for the MakeChunk call in
	// flight. GenerateTerrain takes no arguments (TerrainSource's
	// shape is fixed by Base.MakeChunk), so it reads the voxel buffer
	// from here.
	lastData mapgen.BlockMakeData
}

// New resolves the required content ids and builds a ready-to-use
// Generator. ndef lookups and noise field allocation both happen once,
// here, not per chunk.
func New(ndef mapgen.NodeRegistry, cfg Config) (*Generator, error) {
	content, err := mapgen.ResolveRequired(ndef)
	if err != nil {
		return nil, err
	}

	base := &mapgen.Base{
		Flags:          cfg.Flags,
		WorldSeed:      cfg.WorldSeed,
		WaterLevel:     cfg.WaterLevel,
		LargeCaveDepth: int32(cfg.Params.LargeCaveDepth),
		Collaborators:  cfg.Collaborators,
		Logger:         cfg.Logger,
	}

	csizeBlocks := cfg.ChunkSizeBlocks
	if csizeBlocks < 1 {
		csizeBlocks = 1
	}
	sx := csizeBlocks * mapgen.BlockSize
	sz := sx
	sy := sx + 2 // 1-up 1-down overgeneration

	g := &Generator{
		Base:            base,
		spflags:         cfg.Params.SpFlags,
		params:          cfg.Params,
		content:         content,
		riverDepthBed:   float32(cfg.Params.RiverDepth) + 1.0,
		riverSizeFactor: float32(cfg.Params.RiverSize) / 100.0,

		slopeField:   noise.New2D(cfg.Params.NPInterValleySlope, cfg.WorldSeed, sx, sz),
		heightField:  noise.New2D(cfg.Params.NPTerrainHeight, cfg.WorldSeed, sx, sz),
		depthField:   noise.New2D(cfg.Params.NPValleyDepth, cfg.WorldSeed, sx, sz),
		profileField: noise.New2D(cfg.Params.NPValleyProfile, cfg.WorldSeed, sx, sz),
		fillField:    noise.New3D(cfg.Params.NPInterValleyFill, cfg.WorldSeed, sx, sy, sz),
	}

	if g.spflags&mapgen.ValleysCanyons != 0 {
		// The 3D rivers field samples Y at the same wavelength as Z.
		npRivers3D := cfg.Params.NPRivers
		npRivers3D.Spread.Y = npRivers3D.Spread.Z
		g.rivers3D = noise.New3D(npRivers3D, cfg.WorldSeed, sx, sy, sz)
	} else {
		// Eval2D never reads Spread.Y, so the 2D field takes NPRivers
		// unchanged.
		g.rivers2D = noise.New2D(cfg.Params.NPRivers, cfg.WorldSeed, sx, sz)
	}

	return g, nil
}

// MakeChunk drives the shared pipeline for one chunk.
func (g *Generator) MakeChunk(data mapgen.BlockMakeData) {
	g.lastData = data
	g.Base.MakeChunk(data, g)
}

// BiomeNoiseTiming implements mapgen.TerrainSource: Valleys reads and
// mutates heat/humidity while shaping each column, so biome noise must
// already be calculated.
func (g *Generator) BiomeNoiseTiming() mapgen.BiomeNoiseTiming {
	return mapgen.BiomeNoiseBeforeTerrain
}

// RunPostTerrainPasses implements mapgen.TerrainSource: Valleys has no
// scaled-mode shortcut, every chunk runs the full pipeline.
func (g *Generator) RunPostTerrainPasses() bool {
	return true
}

// PlaceDungeons implements mapgen.TerrainSource.
func (g *Generator) PlaceDungeons(stoneMaxY int32) {
	geom := g.Base.Geometry
	if geom.FullNodeMin.Y < int32(g.params.DungeonYMin) || geom.FullNodeMax.Y > int32(g.params.DungeonYMax) {
		return
	}
	if g.Base.Collaborators.Dungeons == nil {
		return
	}
	g.Base.Collaborators.Dungeons.GenerateDungeons(stoneMaxY)
}
