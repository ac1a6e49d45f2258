// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapgen

// BlockSize is the fixed block edge length B, in nodes.
const BlockSize int32 = 16

// VoxelArea translates between node coordinates and a linear index into a
// dense 3D array. It owns no data and allocates nothing after construction.
type VoxelArea struct {
	MinEdge, MaxEdge Vec3i
	extent           Vec3i
	yStride          int32
	zStride          int32
}

// NewVoxelArea builds a VoxelArea covering [minEdge, maxEdge] inclusive.
func NewVoxelArea(minEdge, maxEdge Vec3i) VoxelArea {
	extent := Vec3i{
		X: maxEdge.X - minEdge.X + 1,
		Y: maxEdge.Y - minEdge.Y + 1,
		Z: maxEdge.Z - minEdge.Z + 1,
	}
	return VoxelArea{
		MinEdge: minEdge,
		MaxEdge: maxEdge,
		extent:  extent,
		yStride: extent.X,
		zStride: extent.X * extent.Y,
	}
}

// Index returns the linear index of (x, y, z) within the area.
func (a VoxelArea) Index(x, y, z int32) int32 {
	return (z-a.MinEdge.Z)*a.zStride + (y-a.MinEdge.Y)*a.yStride + (x - a.MinEdge.X)
}

// AddY steps a previously computed index by n nodes along Y.
func (a VoxelArea) AddY(index, n int32) int32 {
	return index + n*a.yStride
}

// ChunkGeometry translates between block coordinates, node coordinates,
// overgeneration bounds, and VoxelArea linear indices for a single chunk.
type ChunkGeometry struct {
	BlockposMin, BlockposMax     Vec3i
	NodeMin, NodeMax             Vec3i
	FullNodeMin, FullNodeMax     Vec3i
	CSize                        Vec3i // chunk size in nodes: NodeMax-NodeMin+1
	area                         VoxelArea
}

// NewChunkGeometry derives all bounds from the requested block range.
func NewChunkGeometry(blockposMin, blockposMax Vec3i) ChunkGeometry {
	nodeMin := blockposMin.MulScalar(BlockSize)
	nodeMax := blockposMax.AddScalar(1).MulScalar(BlockSize).AddScalar(-1)
	fullNodeMin := blockposMin.AddScalar(-1).MulScalar(BlockSize)
	fullNodeMax := blockposMax.AddScalar(2).MulScalar(BlockSize).AddScalar(-1)

	return ChunkGeometry{
		BlockposMin: blockposMin,
		BlockposMax: blockposMax,
		NodeMin:     nodeMin,
		NodeMax:     nodeMax,
		FullNodeMin: fullNodeMin,
		FullNodeMax: fullNodeMax,
		CSize:       nodeMax.Sub(nodeMin).AddScalar(1),
		area:        NewVoxelArea(fullNodeMin, fullNodeMax),
	}
}

// Area returns the VoxelArea spanning the overgenerated (full_node) bounds,
// which is where terrain and 3D noise are evaluated and written.
func (g ChunkGeometry) Area() VoxelArea {
	return g.area
}

// IndexXZ returns the linear index of (x, g.FullNodeMin.Y, z).
func (g ChunkGeometry) IndexXZ(x, z int32) int32 {
	return g.area.Index(x, g.area.MinEdge.Y, z)
}

// IndexXYZ returns the linear index of (x, y, z).
func (g ChunkGeometry) IndexXYZ(x, y, z int32) int32 {
	return g.area.Index(x, y, z)
}

// AddY steps index by n nodes along Y.
func (g ChunkGeometry) AddY(index, n int32) int32 {
	return g.area.AddY(index, n)
}

// InBounds reports whether requested lies within [min, max] on every axis,
// the precondition every makeChunk call asserts.
func InBounds(requested, min, max Vec3i) bool {
	return requested.X >= min.X && requested.Y >= min.Y && requested.Z >= min.Z &&
		requested.X <= max.X && requested.Y <= max.Y && requested.Z <= max.Z
}
