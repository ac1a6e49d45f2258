// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package watershed

import "github.com/voxelgen/mapgen"

// placeBigDungeon carves one oversized dungeon through the whole chunk,
// configured by a constant-density noise rather than the registered
// per-biome dungeon density: triggered only when the one-shot
// np_big_dungeon sample at this chunk's corner clears 1.0.
func (g *Generator) placeBigDungeon() {
	if g.Base.Collaborators.Dungeons == nil || g.Base.Collaborators.Biome == nil {
		return
	}

	geom := g.Base.Geometry
	chunkMid := geom.NodeMin.Add(geom.NodeMax.Sub(geom.NodeMin).DivScalar(2))
	biome := g.Base.Collaborators.Biome.BiomeAtPoint(chunkMid)

	dp := mapgen.DungeonParams{
		Seed:            g.Base.WorldSeed,
		OnlyInGround:    false,
		CorridorLenMin:  2,
		CorridorLenMax:  16,
		RoomsMin:        32,
		RoomsMax:        32,
		NPDensity:       g.npDungeon,
		CAltWall:        mapgen.ContentIgnore,
		DiagonalDirs:    false,
		Holesize:        mapgen.Vec3i{X: 3, Y: 3, Z: 3},
		RoomSizeMin:     mapgen.Vec3i{X: 8, Y: 4, Z: 8},
		RoomSizeMax:     mapgen.Vec3i{X: 16, Y: 8, Z: 16},
		RoomSizeLargeMin: mapgen.Vec3i{X: 8, Y: 4, Z: 8},
		RoomSizeLargeMax: mapgen.Vec3i{X: 16, Y: 8, Z: 16},
	}

	if biome.DungeonWall != mapgen.ContentIgnore {
		dp.CWall = biome.DungeonWall
		dp.CStair = biome.DungeonWall
		if biome.DungeonStair != mapgen.ContentIgnore {
			dp.CStair = biome.DungeonStair
		}
	} else {
		dp.CWall = biome.Stone
		dp.CStair = biome.Stone
	}

	g.Base.Collaborators.Dungeons.GenerateOneDungeon(dp)
}
