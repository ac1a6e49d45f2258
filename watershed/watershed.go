// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watershed implements the Watershed terrain variant: continental
// base/flat shaping blended with sunk river valleys, mountains, plateaus
// selected by 3D noise, and optional magma vents, all on a density
// gradient that supports a "scaled mode" low-detail render at map_scale
// times the normal vertical resolution.
package watershed

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
	Flags      mapgen.Flags

	// ChunkSizeBlocks is the mapgen chunk edge length in blocks (the
	// world's chunksize setting); every MakeChunk call on the resulting
	// Generator must request a block span of exactly this size. Noise
	// fields are sized from it once, here, and never reallocated.
	ChunkSizeBlocks int32

	Collaborators mapgen.Collaborators
	Logger        *log.Logger
	Params        paramstore.WatershedParams
}

// Generator implements mapgen.TerrainSource for the Watershed algorithm.
type Generator struct {
	*mapgen.Base

	spflags mapgen.Flags
	params  paramstore.WatershedParams
	content mapgen.ResolvedContent

	div           float32
	verticalScale float32
	baseFlat      float32

	// npDungeon is the dummy constant-density noise handed to the
	// big-dungeon carve (placeBigDungeon). The ordinary dungeon pass
	// does not receive it, and whether the big dungeon runs at all is
	// decided by a separate np_big_dungeon sample.
	npDungeon noise.Params

	// ventField..field3D are allocated once, sized from the chunk's node
	// extent and (when div != 1) the scaled-mode spread, and refilled in
	// place every GenerateTerrain call rather than reallocated.
	ventField       *noise.Field
	continentField  *noise.Field
	baseField       *noise.Field
	flatField       *noise.Field
	river1Field     *noise.Field
	river2AField    *noise.Field
	river2BField    *noise.Field
	mountainField   *noise.Field
	plateauField    *noise.Field
	platSelectField *noise.Field
	field3D         *noise.Field

	lastData mapgen.BlockMakeData
}

// New resolves the required content ids, derives the scaled-mode noise
// parameters, and builds a ready-to-use Generator with its noise fields
// allocated once against the chunk size.
func New(ndef mapgen.NodeRegistry, cfg Config) (*Generator, error) {
	content, err := mapgen.ResolveRequired(ndef)
	if err != nil {
		return nil, err
	}
	content.VolcanicRock = mapgen.ResolveVolcanicRock(ndef, content.Stone)

	base := &mapgen.Base{
		Flags:          cfg.Flags,
		WorldSeed:      cfg.WorldSeed,
		WaterLevel:     cfg.WaterLevel,
		LargeCaveDepth: int32(cfg.Params.LargeCaveDepth),
		Collaborators:  cfg.Collaborators,
		Logger:         cfg.Logger,
	}

	p := cfg.Params
	div := p.MapScale
	if div < 1.0 {
		div = 1.0
	}

	// base_flat is computed before vertical_scale is divided by div.
	verticalScale := float32(128.0)
	baseFlat := (p.FlatY - p.SeaY) / verticalScale

	npVentDiv := p.NPVent
	npContinentDiv := p.NPContinent
	npBaseDiv := p.NPBase
	npFlatDiv := p.NPFlat
	npRiver1Div := p.NPRiver1
	npRiver2ADiv := p.NPRiver2A
	npRiver2BDiv := p.NPRiver2B
	npMountainDiv := p.NPMountain
	npPlateauDiv := p.NPPlateau
	npPlatSelectDiv := p.NPPlatSelect
	np3DDiv := p.NP3D

	if div != 1.0 {
		verticalScale /= div
		npVentDiv.Spread = npVentDiv.Spread.DivScalar(div)
		npContinentDiv.Spread = npContinentDiv.Spread.DivScalar(div)
		npBaseDiv.Spread = npBaseDiv.Spread.DivScalar(div)
		npFlatDiv.Spread = npFlatDiv.Spread.DivScalar(div)
		npRiver1Div.Spread = npRiver1Div.Spread.DivScalar(div)
		npRiver2ADiv.Spread = npRiver2ADiv.Spread.DivScalar(div)
		npRiver2BDiv.Spread = npRiver2BDiv.Spread.DivScalar(div)
		npMountainDiv.Spread = npMountainDiv.Spread.DivScalar(div)
		npPlateauDiv.Spread = npPlateauDiv.Spread.DivScalar(div)
		npPlatSelectDiv.Spread = npPlatSelectDiv.Spread.DivScalar(div)
		np3DDiv.Spread = np3DDiv.Spread.DivScalar(div)
	}

	csizeBlocks := cfg.ChunkSizeBlocks
	if csizeBlocks < 1 {
		csizeBlocks = 1
	}
	sx := csizeBlocks * mapgen.BlockSize
	sz := sx
	sy := sx + 2 // 1-up 1-down overgeneration
	seed := cfg.WorldSeed

	g := &Generator{
		Base:          base,
		spflags:       p.SpFlags,
		params:        p,
		content:       content,
		div:           div,
		verticalScale: verticalScale,
		baseFlat:      baseFlat,

		npDungeon: noise.Params{
			Offset: 32.0, Scale: 0.0, Spread: noise.Spread{X: 128, Y: 128, Z: 128},
			SeedSalt: 0, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0,
		},

		ventField:       noise.New2D(npVentDiv, seed, sx, sz),
		continentField:  noise.New2D(npContinentDiv, seed, sx, sz),
		baseField:       noise.New2D(npBaseDiv, seed, sx, sz),
		flatField:       noise.New2D(npFlatDiv, seed, sx, sz),
		river1Field:     noise.New2D(npRiver1Div, seed, sx, sz),
		river2AField:    noise.New2D(npRiver2ADiv, seed, sx, sz),
		river2BField:    noise.New2D(npRiver2BDiv, seed, sx, sz),
		mountainField:   noise.New2D(npMountainDiv, seed, sx, sz),
		plateauField:    noise.New2D(npPlateauDiv, seed, sx, sz),
		platSelectField: noise.New2D(npPlatSelectDiv, seed, sx, sz),
		field3D:         noise.New3D(np3DDiv, seed, sx, sy, sz),
	}

	return g, nil
}

// MakeChunk drives the shared pipeline for one chunk.
func (g *Generator) MakeChunk(data mapgen.BlockMakeData) {
	g.lastData = data
	g.Base.MakeChunk(data, g)
}

// BiomeNoiseTiming implements mapgen.TerrainSource: Watershed terrain
// shaping never touches heat/humidity, so biome noise only needs to exist
// before the post-terrain biome pass.
func (g *Generator) BiomeNoiseTiming() mapgen.BiomeNoiseTiming {
	return mapgen.BiomeNoiseAfterTerrain
}

// RunPostTerrainPasses implements mapgen.TerrainSource: scaled-mode
// (div != 1) chunks are a low-detail preview render, so everything past
// terrain shaping — biomes, caves, ores, dungeons, decorations, dust,
// heightmap — is skipped; only liquid/light still run.
func (g *Generator) RunPostTerrainPasses() bool {
	return g.div == 1.0
}

// PlaceDungeons implements mapgen.TerrainSource: a one-shot big-dungeon
// noise sample decides whether this chunk gets one oversized, density-
// noise-carved dungeon instead of the ordinary dungeon pass.
func (g *Generator) PlaceDungeons(stoneMaxY int32) {
	geom := g.Base.Geometry
	seed := g.Base.WorldSeed

	bigDungeon := noise.New3D(g.params.NPBigDungeon, seed, 1, 1, 1)
	nMdun := bigDungeon.Eval3D(geom.NodeMin.X, geom.NodeMin.Y, geom.NodeMin.Z)

	if nMdun > 1.0 && geom.NodeMin.Y < stoneMaxY &&
		geom.FullNodeMin.Y >= int32(g.params.BigDungeonYMin) &&
		geom.FullNodeMax.Y <= int32(g.params.BigDungeonYMax) {
		g.placeBigDungeon()
		return
	}

	if geom.FullNodeMin.Y >= int32(g.params.DungeonYMin) &&
		geom.FullNodeMax.Y <= int32(g.params.DungeonYMax) {
		if g.Base.Collaborators.Dungeons != nil {
			g.Base.Collaborators.Dungeons.GenerateDungeons(stoneMaxY)
		}
	}
}

// GetSpawnLevelAtPoint returns the spawn altitude for p: Watershed never
// refuses a spawn point, it trusts the caller to probe downward from a
// fixed offset above water level.
func (g *Generator) GetSpawnLevelAtPoint(p mapgen.Vec2i) int32 {
	return g.Base.WaterLevel + 64
}
