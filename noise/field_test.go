// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import "testing"

func testParams() Params {
	return Params{
		Offset:      0,
		Scale:       1,
		Spread:      Spread{X: 250, Y: 250, Z: 250},
		SeedSalt:    42,
		Octaves:     3,
		Persistence: 0.6,
		Lacunarity:  2.0,
	}
}

func TestField_Eval2D_Deterministic(t *testing.T) {
	p := testParams()
	a := New2D(p, 7, 16, 16)
	b := New2D(p, 7, 16, 16)

	for z := int32(0); z < 4; z++ {
		for x := int32(0); x < 4; x++ {
			va := a.Eval2D(x*37, z*53)
			vb := b.Eval2D(x*37, z*53)
			if va != vb {
				t.Fatalf("Eval2D(%d,%d): %v != %v", x, z, va, vb)
			}
		}
	}
}

func TestField_FillMap2D_MatchesEval2D(t *testing.T) {
	p := testParams()
	f := New2D(p, 11, 8, 8)
	const originX, originZ = 100, -40
	f.FillMap2D(originX, originZ)

	for z := int32(0); z < 8; z++ {
		for x := int32(0); x < 8; x++ {
			idx := (z)*8 + x
			want := f.Eval2D(originX+x, originZ+z)
			got := f.At(idx)
			if got != want {
				t.Fatalf("At(%d) = %v, want %v (x=%d z=%d)", idx, got, want, x, z)
			}
		}
	}
}

func TestField_FillMap3D_IndexFormula(t *testing.T) {
	p := testParams()
	const sx, sy, sz = 4, 6, 4
	f := New3D(p, 3, sx, sy, sz)
	const originX, originY, originZ = 0, -1, 0
	f.FillMap3D(originX, originY, originZ)

	for z := int32(0); z < sz; z++ {
		for y := int32(0); y < sy; y++ {
			for x := int32(0); x < sx; x++ {
				idx := (z*sy+y)*sx + x
				want := f.Eval3D(originX+x, originY+y, originZ+z)
				got := f.At(idx)
				if got != want {
					t.Fatalf("At(%d) = %v, want %v (x=%d y=%d z=%d)", idx, got, want, x, y, z)
				}
			}
		}
	}

	if f.YStride() != sx {
		t.Errorf("YStride() = %d, want %d", f.YStride(), sx)
	}
	if f.ZStride1u1d() != sx*sy {
		t.Errorf("ZStride1u1d() = %d, want %d", f.ZStride1u1d(), sx*sy)
	}
}

func TestField_AbsValueFlag_NonNegativeOctaves(t *testing.T) {
	p := testParams()
	p.Flags = FlagAbsValue
	p.Octaves = 1
	f := New2D(p, 5, 4, 4)

	// With a single octave, abs-valuing then scaling by a positive scale
	// and zero offset can never go negative.
	for i := int32(0); i < 50; i++ {
		if v := f.Eval2D(i*13, -i*7); v < 0 {
			t.Fatalf("Eval2D returned negative %v with FlagAbsValue set", v)
		}
	}
}

func TestField_EasedFlag_ChangesOutput(t *testing.T) {
	p := testParams()
	plain := New2D(p, 9, 4, 4)

	eased := p
	eased.Flags = FlagEased
	easedField := New2D(eased, 9, 4, 4)

	differs := false
	for i := int32(0); i < 20; i++ {
		if plain.Eval2D(i*17, i*23) != easedField.Eval2D(i*17, i*23) {
			differs = true
			break
		}
	}
	if !differs {
		t.Fatalf("FlagEased produced identical output to unset across 20 samples")
	}
}
