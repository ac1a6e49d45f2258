// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import (
	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/noise"
)

var valleysFlagDesc = []FlagDesc{
	{"altitude_chill", mapgen.ValleysAltChill},
	{"humid_rivers", mapgen.ValleysHumidRivers},
	{"vary_river_depth", mapgen.ValleysVaryRiverDepth},
	{"altitude_dry", mapgen.ValleysAltDry},
	{"canyons", mapgen.ValleysCanyons},
}

// ValleysParams is the complete set of Valleys tunables, mirroring
// MapgenValleysParams.
type ValleysParams struct {
	SpFlags mapgen.Flags

	AltitudeChill  uint16
	LargeCaveDepth int16
	LavaDepth      int16
	RiverDepth     uint16
	RiverSize      uint16
	CaveWidth      float32
	CavernLimit    int16
	CavernTaper    int16
	CavernThreshold float32
	DungeonYMin    int16
	DungeonYMax    int16

	NPFillerDepth       noise.Params
	NPInterValleyFill   noise.Params
	NPInterValleySlope  noise.Params
	NPRivers            noise.Params
	NPTerrainHeight     noise.Params
	NPValleyDepth       noise.Params
	NPValleyProfile     noise.Params
	NPCave1             noise.Params
	NPCave2             noise.Params
	NPCavern            noise.Params
}

// DefaultValleysParams reproduces the verbatim defaults from spec §6.
func DefaultValleysParams() ValleysParams {
	return ValleysParams{
		SpFlags:         0,
		AltitudeChill:   90,
		LargeCaveDepth:  -33,
		LavaDepth:       -256,
		RiverDepth:      4,
		RiverSize:       5,
		CaveWidth:       0.09,
		CavernLimit:     -256,
		CavernTaper:     256,
		CavernThreshold: 0.7,
		DungeonYMin:     -31000,
		DungeonYMax:     31000,

		NPFillerDepth: noise.Params{
			Offset: 0.0, Scale: 1.2, Spread: noise.Spread{X: 256, Y: 256, Z: 256},
			SeedSalt: 1605, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPInterValleyFill: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 256, Y: 512, Z: 256},
			SeedSalt: 1993, Octaves: 6, Persistence: 0.8, Lacunarity: 2.0,
		},
		NPInterValleySlope: noise.Params{
			Offset: 0.5, Scale: 0.5, Spread: noise.Spread{X: 128, Y: 128, Z: 128},
			SeedSalt: 746, Octaves: 1, Persistence: 1.0, Lacunarity: 2.0,
		},
		NPRivers: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 256, Y: 256, Z: 256},
			SeedSalt: -6050, Octaves: 5, Persistence: 0.6, Lacunarity: 2.0,
			Flags: noise.FlagEased,
		},
		NPTerrainHeight: noise.Params{
			Offset: -10, Scale: 50, Spread: noise.Spread{X: 1024, Y: 1024, Z: 1024},
			SeedSalt: 5202, Octaves: 6, Persistence: 0.4, Lacunarity: 2.0,
		},
		NPValleyDepth: noise.Params{
			Offset: 5, Scale: 4, Spread: noise.Spread{X: 512, Y: 512, Z: 512},
			SeedSalt: -1914, Octaves: 1, Persistence: 1.0, Lacunarity: 2.0,
		},
		NPValleyProfile: noise.Params{
			Offset: 0.6, Scale: 0.5, Spread: noise.Spread{X: 512, Y: 512, Z: 512},
			SeedSalt: 777, Octaves: 1, Persistence: 1.0, Lacunarity: 2.0,
		},
		NPCave1: noise.Params{
			Offset: 0, Scale: 12, Spread: noise.Spread{X: 61, Y: 61, Z: 61},
			SeedSalt: 52534, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPCave2: noise.Params{
			Offset: 0, Scale: 12, Spread: noise.Spread{X: 67, Y: 67, Z: 67},
			SeedSalt: 10325, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPCavern: noise.Params{
			Offset: 0, Scale: 1, Spread: noise.Spread{X: 768, Y: 256, Z: 768},
			SeedSalt: 59033, Octaves: 6, Persistence: 0.63, Lacunarity: 2.0,
		},
	}
}

// valleysKeys enumerates every recognized mgvalleys_* key, for strict mode.
var valleysKeys = func() map[string]struct{} {
	names := []string{
		"mgvalleys_spflags", "mgvalleys_altitude_chill", "mgvalleys_large_cave_depth",
		"mgvalleys_lava_depth", "mgvalleys_river_depth", "mgvalleys_river_size",
		"mgvalleys_cave_width", "mgvalleys_cavern_limit", "mgvalleys_cavern_taper",
		"mgvalleys_cavern_threshold", "mgvalleys_dungeon_ymin", "mgvalleys_dungeon_ymax",
		"mgvalleys_np_filler_depth", "mgvalleys_np_inter_valley_fill",
		"mgvalleys_np_inter_valley_slope", "mgvalleys_np_rivers",
		"mgvalleys_np_terrain_height", "mgvalleys_np_valley_depth",
		"mgvalleys_np_valley_profile", "mgvalleys_np_cave1", "mgvalleys_np_cave2",
		"mgvalleys_np_cavern",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

// ReadValleysParams loads a ValleysParams from store, keeping
// DefaultValleysParams() for any absent key. In strict mode, an
// mgvalleys_-prefixed key not in the recognized schema is an error.
func ReadValleysParams(store KVStore, strict bool) (ValleysParams, error) {
	if strict {
		if err := checkStrict(store, "mgvalleys_", valleysKeys); err != nil {
			return ValleysParams{}, err
		}
	}

	p := DefaultValleysParams()

	p.SpFlags = getFlagStr(store, "mgvalleys_spflags", valleysFlagDesc, p.SpFlags)
	p.AltitudeChill = getU16(store, "mgvalleys_altitude_chill", p.AltitudeChill)
	p.LargeCaveDepth = getS16(store, "mgvalleys_large_cave_depth", p.LargeCaveDepth)
	p.LavaDepth = getS16(store, "mgvalleys_lava_depth", p.LavaDepth)
	p.RiverDepth = getU16(store, "mgvalleys_river_depth", p.RiverDepth)
	p.RiverSize = getU16(store, "mgvalleys_river_size", p.RiverSize)
	p.CaveWidth = getFloat(store, "mgvalleys_cave_width", p.CaveWidth)
	p.CavernLimit = getS16(store, "mgvalleys_cavern_limit", p.CavernLimit)
	p.CavernTaper = getS16(store, "mgvalleys_cavern_taper", p.CavernTaper)
	p.CavernThreshold = getFloat(store, "mgvalleys_cavern_threshold", p.CavernThreshold)
	p.DungeonYMin = getS16(store, "mgvalleys_dungeon_ymin", p.DungeonYMin)
	p.DungeonYMax = getS16(store, "mgvalleys_dungeon_ymax", p.DungeonYMax)

	p.NPFillerDepth = getNoiseParams(store, "mgvalleys_np_filler_depth", p.NPFillerDepth)
	p.NPInterValleyFill = getNoiseParams(store, "mgvalleys_np_inter_valley_fill", p.NPInterValleyFill)
	p.NPInterValleySlope = getNoiseParams(store, "mgvalleys_np_inter_valley_slope", p.NPInterValleySlope)
	p.NPRivers = getNoiseParams(store, "mgvalleys_np_rivers", p.NPRivers)
	p.NPTerrainHeight = getNoiseParams(store, "mgvalleys_np_terrain_height", p.NPTerrainHeight)
	p.NPValleyDepth = getNoiseParams(store, "mgvalleys_np_valley_depth", p.NPValleyDepth)
	p.NPValleyProfile = getNoiseParams(store, "mgvalleys_np_valley_profile", p.NPValleyProfile)
	p.NPCave1 = getNoiseParams(store, "mgvalleys_np_cave1", p.NPCave1)
	p.NPCave2 = getNoiseParams(store, "mgvalleys_np_cave2", p.NPCave2)
	p.NPCavern = getNoiseParams(store, "mgvalleys_np_cavern", p.NPCavern)

	return p, nil
}

// WriteValleysParams mirrors every field of p back into store.
func WriteValleysParams(store KVStore, p ValleysParams) {
	setFlagStr(store, "mgvalleys_spflags", valleysFlagDesc, p.SpFlags)
	setU16(store, "mgvalleys_altitude_chill", p.AltitudeChill)
	setS16(store, "mgvalleys_large_cave_depth", p.LargeCaveDepth)
	setS16(store, "mgvalleys_lava_depth", p.LavaDepth)
	setU16(store, "mgvalleys_river_depth", p.RiverDepth)
	setU16(store, "mgvalleys_river_size", p.RiverSize)
	setFloat(store, "mgvalleys_cave_width", p.CaveWidth)
	setS16(store, "mgvalleys_cavern_limit", p.CavernLimit)
	setS16(store, "mgvalleys_cavern_taper", p.CavernTaper)
	setFloat(store, "mgvalleys_cavern_threshold", p.CavernThreshold)
	setS16(store, "mgvalleys_dungeon_ymin", p.DungeonYMin)
	setS16(store, "mgvalleys_dungeon_ymax", p.DungeonYMax)

	setNoiseParams(store, "mgvalleys_np_filler_depth", p.NPFillerDepth)
	setNoiseParams(store, "mgvalleys_np_inter_valley_fill", p.NPInterValleyFill)
	setNoiseParams(store, "mgvalleys_np_inter_valley_slope", p.NPInterValleySlope)
	setNoiseParams(store, "mgvalleys_np_rivers", p.NPRivers)
	setNoiseParams(store, "mgvalleys_np_terrain_height", p.NPTerrainHeight)
	setNoiseParams(store, "mgvalleys_np_valley_depth", p.NPValleyDepth)
	setNoiseParams(store, "mgvalleys_np_valley_profile", p.NPValleyProfile)
	setNoiseParams(store, "mgvalleys_np_cave1", p.NPCave1)
	setNoiseParams(store, "mgvalleys_np_cave2", p.NPCave2)
	setNoiseParams(store, "mgvalleys_np_cavern", p.NPCavern)
}
