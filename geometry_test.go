// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapgen

import "testing"

func TestNewChunkGeometry_SingleBlock(t *testing.T) {
	block := Vec3i{X: 2, Y: -1, Z: 3}
	geom := NewChunkGeometry(block, block)

	wantNodeMin := Vec3i{X: 32, Y: -16, Z: 48}
	wantNodeMax := Vec3i{X: 47, Y: -1, Z: 63}
	if geom.NodeMin != wantNodeMin || geom.NodeMax != wantNodeMax {
		t.Fatalf("node bounds = [%v, %v], want [%v, %v]", geom.NodeMin, geom.NodeMax, wantNodeMin, wantNodeMax)
	}

	wantFullMin := Vec3i{X: 16, Y: -32, Z: 32}
	wantFullMax := Vec3i{X: 63, Y: 15, Z: 79}
	if geom.FullNodeMin != wantFullMin || geom.FullNodeMax != wantFullMax {
		t.Fatalf("full node bounds = [%v, %v], want [%v, %v]", geom.FullNodeMin, geom.FullNodeMax, wantFullMin, wantFullMax)
	}

	wantCSize := Vec3i{X: 16, Y: 16, Z: 16}
	if geom.CSize != wantCSize {
		t.Fatalf("CSize = %v, want %v", geom.CSize, wantCSize)
	}
}

func TestVoxelArea_IndexRoundTrips(t *testing.T) {
	area := NewVoxelArea(Vec3i{X: -5, Y: -2, Z: 10}, Vec3i{X: 5, Y: 2, Z: 20})

	seen := make(map[int32]Vec3i)
	for z := area.MinEdge.Z; z <= area.MaxEdge.Z; z++ {
		for y := area.MinEdge.Y; y <= area.MaxEdge.Y; y++ {
			for x := area.MinEdge.X; x <= area.MaxEdge.X; x++ {
				idx := area.Index(x, y, z)
				if other, ok := seen[idx]; ok {
					t.Fatalf("index collision at %v and %v: both map to %d", Vec3i{x, y, z}, other, idx)
				}
				seen[idx] = Vec3i{X: x, Y: y, Z: z}
			}
		}
	}
}

func TestVoxelArea_AddY(t *testing.T) {
	area := NewVoxelArea(Vec3i{X: 0, Y: 0, Z: 0}, Vec3i{X: 3, Y: 3, Z: 3})
	base := area.Index(1, 1, 1)
	stepped := area.AddY(base, 2)
	if want := area.Index(1, 3, 1); stepped != want {
		t.Fatalf("AddY(base, 2) = %d, want %d", stepped, want)
	}
}

func TestChunkGeometry_MultiBlockSpan(t *testing.T) {
	geom := NewChunkGeometry(Vec3i{X: 0, Y: 0, Z: 0}, Vec3i{X: 1, Y: 0, Z: 1})
	wantCSize := Vec3i{X: 32, Y: 16, Z: 32}
	if geom.CSize != wantCSize {
		t.Fatalf("CSize = %v, want %v", geom.CSize, wantCSize)
	}
	// Area spans the full overgenerated bounds, not just CSize.
	wantExtent := geom.FullNodeMax.Sub(geom.FullNodeMin).AddScalar(1)
	gotExtent := geom.Area().MaxEdge.Sub(geom.Area().MinEdge).AddScalar(1)
	if gotExtent != wantExtent {
		t.Fatalf("area extent = %v, want %v", gotExtent, wantExtent)
	}
}

func TestInBounds(t *testing.T) {
	min := Vec3i{X: 0, Y: 0, Z: 0}
	max := Vec3i{X: 2, Y: 2, Z: 2}
	if !InBounds(Vec3i{X: 1, Y: 1, Z: 1}, min, max) {
		t.Fatalf("expected (1,1,1) to be in bounds")
	}
	if InBounds(Vec3i{X: 3, Y: 1, Z: 1}, min, max) {
		t.Fatalf("expected (3,1,1) to be out of bounds")
	}
}
