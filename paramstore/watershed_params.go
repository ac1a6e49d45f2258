// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import (
	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/noise"
)

var watershedFlagDesc = []FlagDesc{
	{"vents", mapgen.WatershedVents},
}

// WatershedParams is the complete set of Watershed tunables, mirroring
// MapgenWatershedParams.
type WatershedParams struct {
	SpFlags mapgen.Flags

	MapScale       float32
	SeaY           float32
	FlatY          float32
	ContinentArea  float32
	RiverWidth     float32
	RiverDepth     float32
	RiverBank      float32
	BigDungeonYMin int16
	BigDungeonYMax int16

	CaveWidth       float32
	LargeCaveDepth  int16
	LavaDepth       int16
	CavernLimit     int16
	CavernTaper     int16
	CavernThreshold float32
	DungeonYMin     int16
	DungeonYMax     int16

	NPVent       noise.Params
	NPContinent  noise.Params
	NPBase       noise.Params
	NPFlat       noise.Params
	NPRiver1     noise.Params
	NPRiver2A    noise.Params
	NPRiver2B    noise.Params
	NPMountain   noise.Params
	NPPlateau    noise.Params
	NPPlatSelect noise.Params
	NP3D         noise.Params
	NPBigDungeon noise.Params

	NPFillerDepth noise.Params
	NPCave1       noise.Params
	NPCave2       noise.Params
	NPCavern      noise.Params
}

// DefaultWatershedParams reproduces the verbatim defaults from spec §6.
func DefaultWatershedParams() WatershedParams {
	return WatershedParams{
		SpFlags:        mapgen.WatershedVents,
		MapScale:       1.0,
		SeaY:           1.0,
		FlatY:          7.0,
		ContinentArea:  -1.0,
		RiverWidth:     0.06,
		RiverDepth:     0.25,
		RiverBank:      0.01,
		BigDungeonYMin: -31000,
		BigDungeonYMax: 31000,

		CaveWidth:       0.1,
		LargeCaveDepth:  -33,
		LavaDepth:       -256,
		CavernLimit:     -256,
		CavernTaper:     256,
		CavernThreshold: 0.7,
		DungeonYMin:     -31000,
		DungeonYMax:     31000,

		NPVent: noise.Params{
			Offset: -1.0, Scale: 1.07, Spread: noise.Spread{X: 48, Y: 48, Z: 48},
			SeedSalt: 692, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPContinent: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 12288, Y: 12288, Z: 12288},
			SeedSalt: 4001, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPBase: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 2048, Y: 2048, Z: 2048},
			SeedSalt: 106, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPFlat: noise.Params{
			Offset: 0.0, Scale: 0.4, Spread: noise.Spread{X: 2048, Y: 2048, Z: 2048},
			SeedSalt: 909, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPRiver1: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 1024, Y: 1024, Z: 1024},
			SeedSalt: 2177, Octaves: 5, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPRiver2A: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 512, Y: 512, Z: 512},
			SeedSalt: 5003, Octaves: 5, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPRiver2B: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 512, Y: 512, Z: 512},
			SeedSalt: 8839, Octaves: 5, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPMountain: noise.Params{
			Offset: 2.0, Scale: -1.0, Spread: noise.Spread{X: 1536, Y: 1536, Z: 1536},
			SeedSalt: 50001, Octaves: 7, Persistence: 0.6, Lacunarity: 2.0,
			Flags: noise.FlagEased | noise.FlagAbsValue,
		},
		NPPlateau: noise.Params{
			Offset: 0.5, Scale: 0.2, Spread: noise.Spread{X: 1024, Y: 1024, Z: 1024},
			SeedSalt: 8111, Octaves: 4, Persistence: 0.4, Lacunarity: 2.0,
		},
		NPPlatSelect: noise.Params{
			Offset: -2.0, Scale: 6.0, Spread: noise.Spread{X: 2048, Y: 2048, Z: 2048},
			SeedSalt: 30089, Octaves: 8, Persistence: 0.7, Lacunarity: 2.0,
		},
		NP3D: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 384, Y: 384, Z: 384},
			SeedSalt: 70033, Octaves: 5, Persistence: 0.63, Lacunarity: 2.0,
		},
		NPBigDungeon: noise.Params{
			Offset: 0.0, Scale: 1.25, Spread: noise.Spread{X: 128, Y: 128, Z: 128},
			SeedSalt: 23, Octaves: 1, Persistence: 0.5, Lacunarity: 2.0,
		},

		NPFillerDepth: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 128, Y: 128, Z: 128},
			SeedSalt: 261, Octaves: 3, Persistence: 0.7, Lacunarity: 2.0,
		},
		NPCave1: noise.Params{
			Offset: 0.0, Scale: 12.0, Spread: noise.Spread{X: 61, Y: 61, Z: 61},
			SeedSalt: 52534, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPCave2: noise.Params{
			Offset: 0.0, Scale: 12.0, Spread: noise.Spread{X: 67, Y: 67, Z: 67},
			SeedSalt: 10325, Octaves: 3, Persistence: 0.5, Lacunarity: 2.0,
		},
		NPCavern: noise.Params{
			Offset: 0.0, Scale: 1.0, Spread: noise.Spread{X: 384, Y: 128, Z: 384},
			SeedSalt: 723, Octaves: 5, Persistence: 0.63, Lacunarity: 2.0,
		},
	}
}

var watershedKeys = func() map[string]struct{} {
	names := []string{
		"mgwatershed_spflags", "mgwatershed_map_scale", "mgwatershed_sea_y",
		"mgwatershed_flat_y", "mgwatershed_continent_area", "mgwatershed_river_width",
		"mgwatershed_river_depth", "mgwatershed_river_bank",
		"mgwatershed_big_dungeon_ymin", "mgwatershed_big_dungeon_ymax",
		"mgwatershed_cave_width", "mgwatershed_large_cave_depth", "mgwatershed_lava_depth",
		"mgwatershed_cavern_limit", "mgwatershed_cavern_taper", "mgwatershed_cavern_threshold",
		"mgwatershed_dungeon_ymin", "mgwatershed_dungeon_ymax",
		"mgwatershed_np_vent", "mgwatershed_np_continent", "mgwatershed_np_base",
		"mgwatershed_np_flat", "mgwatershed_np_river1", "mgwatershed_np_river2a",
		"mgwatershed_np_river2b", "mgwatershed_np_mountain", "mgwatershed_np_plateau",
		"mgwatershed_np_plat_select", "mgwatershed_np_3d", "mgwatershed_np_big_dungeon",
		"mgwatershed_np_filler_depth", "mgwatershed_np_cave1", "mgwatershed_np_cave2",
		"mgwatershed_np_cavern",
	}
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}()

// ReadWatershedParams loads a WatershedParams from store, keeping
// DefaultWatershedParams() for any absent key.
func ReadWatershedParams(store KVStore, strict bool) (WatershedParams, error) {
	if strict {
		if err := checkStrict(store, "mgwatershed_", watershedKeys); err != nil {
			return WatershedParams{}, err
		}
	}

	p := DefaultWatershedParams()

	p.SpFlags = getFlagStr(store, "mgwatershed_spflags", watershedFlagDesc, p.SpFlags)
	p.MapScale = getFloat(store, "mgwatershed_map_scale", p.MapScale)
	p.SeaY = getFloat(store, "mgwatershed_sea_y", p.SeaY)
	p.FlatY = getFloat(store, "mgwatershed_flat_y", p.FlatY)
	p.ContinentArea = getFloat(store, "mgwatershed_continent_area", p.ContinentArea)
	p.RiverWidth = getFloat(store, "mgwatershed_river_width", p.RiverWidth)
	p.RiverDepth = getFloat(store, "mgwatershed_river_depth", p.RiverDepth)
	p.RiverBank = getFloat(store, "mgwatershed_river_bank", p.RiverBank)
	p.BigDungeonYMin = getS16(store, "mgwatershed_big_dungeon_ymin", p.BigDungeonYMin)
	p.BigDungeonYMax = getS16(store, "mgwatershed_big_dungeon_ymax", p.BigDungeonYMax)

	p.CaveWidth = getFloat(store, "mgwatershed_cave_width", p.CaveWidth)
	p.LargeCaveDepth = getS16(store, "mgwatershed_large_cave_depth", p.LargeCaveDepth)
	p.LavaDepth = getS16(store, "mgwatershed_lava_depth", p.LavaDepth)
	p.CavernLimit = getS16(store, "mgwatershed_cavern_limit", p.CavernLimit)
	p.CavernTaper = getS16(store, "mgwatershed_cavern_taper", p.CavernTaper)
	p.CavernThreshold = getFloat(store, "mgwatershed_cavern_threshold", p.CavernThreshold)
	p.DungeonYMin = getS16(store, "mgwatershed_dungeon_ymin", p.DungeonYMin)
	p.DungeonYMax = getS16(store, "mgwatershed_dungeon_ymax", p.DungeonYMax)

	p.NPVent = getNoiseParams(store, "mgwatershed_np_vent", p.NPVent)
	p.NPContinent = getNoiseParams(store, "mgwatershed_np_continent", p.NPContinent)
	p.NPBase = getNoiseParams(store, "mgwatershed_np_base", p.NPBase)
	p.NPFlat = getNoiseParams(store, "mgwatershed_np_flat", p.NPFlat)
	p.NPRiver1 = getNoiseParams(store, "mgwatershed_np_river1", p.NPRiver1)
	p.NPRiver2A = getNoiseParams(store, "mgwatershed_np_river2a", p.NPRiver2A)
	p.NPRiver2B = getNoiseParams(store, "mgwatershed_np_river2b", p.NPRiver2B)
	p.NPMountain = getNoiseParams(store, "mgwatershed_np_mountain", p.NPMountain)
	p.NPPlateau = getNoiseParams(store, "mgwatershed_np_plateau", p.NPPlateau)
	p.NPPlatSelect = getNoiseParams(store, "mgwatershed_np_plat_select", p.NPPlatSelect)
	p.NP3D = getNoiseParams(store, "mgwatershed_np_3d", p.NP3D)
	p.NPBigDungeon = getNoiseParams(store, "mgwatershed_np_big_dungeon", p.NPBigDungeon)

	p.NPFillerDepth = getNoiseParams(store, "mgwatershed_np_filler_depth", p.NPFillerDepth)
	p.NPCave1 = getNoiseParams(store, "mgwatershed_np_cave1", p.NPCave1)
	p.NPCave2 = getNoiseParams(store, "mgwatershed_np_cave2", p.NPCave2)
	p.NPCavern = getNoiseParams(store, "mgwatershed_np_cavern", p.NPCavern)

	return p, nil
}

// WriteWatershedParams mirrors every field of p back into store.
func WriteWatershedParams(store KVStore, p WatershedParams) {
	setFlagStr(store, "mgwatershed_spflags", watershedFlagDesc, p.SpFlags)
	setFloat(store, "mgwatershed_map_scale", p.MapScale)
	setFloat(store, "mgwatershed_sea_y", p.SeaY)
	setFloat(store, "mgwatershed_flat_y", p.FlatY)
	setFloat(store, "mgwatershed_continent_area", p.ContinentArea)
	setFloat(store, "mgwatershed_river_width", p.RiverWidth)
	setFloat(store, "mgwatershed_river_depth", p.RiverDepth)
	setFloat(store, "mgwatershed_river_bank", p.RiverBank)
	setS16(store, "mgwatershed_big_dungeon_ymin", p.BigDungeonYMin)
	setS16(store, "mgwatershed_big_dungeon_ymax", p.BigDungeonYMax)

	setFloat(store, "mgwatershed_cave_width", p.CaveWidth)
	setS16(store, "mgwatershed_large_cave_depth", p.LargeCaveDepth)
	setS16(store, "mgwatershed_lava_depth", p.LavaDepth)
	setS16(store, "mgwatershed_cavern_limit", p.CavernLimit)
	setS16(store, "mgwatershed_cavern_taper", p.CavernTaper)
	setFloat(store, "mgwatershed_cavern_threshold", p.CavernThreshold)
	setS16(store, "mgwatershed_dungeon_ymin", p.DungeonYMin)
	setS16(store, "mgwatershed_dungeon_ymax", p.DungeonYMax)

	setNoiseParams(store, "mgwatershed_np_vent", p.NPVent)
	setNoiseParams(store, "mgwatershed_np_continent", p.NPContinent)
	setNoiseParams(store, "mgwatershed_np_base", p.NPBase)
	setNoiseParams(store, "mgwatershed_np_flat", p.NPFlat)
	setNoiseParams(store, "mgwatershed_np_river1", p.NPRiver1)
	setNoiseParams(store, "mgwatershed_np_river2a", p.NPRiver2A)
	setNoiseParams(store, "mgwatershed_np_river2b", p.NPRiver2B)
	setNoiseParams(store, "mgwatershed_np_mountain", p.NPMountain)
	setNoiseParams(store, "mgwatershed_np_plateau", p.NPPlateau)
	setNoiseParams(store, "mgwatershed_np_plat_select", p.NPPlatSelect)
	setNoiseParams(store, "mgwatershed_np_3d", p.NP3D)
	setNoiseParams(store, "mgwatershed_np_big_dungeon", p.NPBigDungeon)

	setNoiseParams(store, "mgwatershed_np_filler_depth", p.NPFillerDepth)
	setNoiseParams(store, "mgwatershed_np_cave1", p.NPCave1)
	setNoiseParams(store, "mgwatershed_np_cave2", p.NPCave2)
	setNoiseParams(store, "mgwatershed_np_cavern", p.NPCavern)
}
