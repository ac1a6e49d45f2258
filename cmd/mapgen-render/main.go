// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command mapgen-render drives either terrain generator over a square of
// chunks and writes a top-down heightmap PNG, for eyeballing a noise
// parameter change without a full game client.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/voxelgen/mapgen"
	"github.com/voxelgen/mapgen/paramstore"
	"github.com/voxelgen/mapgen/valleys"
	"github.com/voxelgen/mapgen/watershed"
)

type colorVec [3]float32

var ramp = [...]colorVec{
	rgb(0, 50, 115),
	rgb(0, 75, 130),
	rgb(194, 178, 128),
	rgb(90, 180, 30),
	rgb(105, 110, 115),
	gray(220),
}

const (
	oceanLevel = 0
	sandLevel  = 3
	grassLevel = 40
	rockLevel  = 100
)

func main() {
	var (
		algo       string
		seed       int64
		blocks     int
		waterLevel int
		out        string
	)
	flag.StringVar(&algo, "algo", "valleys", "terrain algorithm: valleys or watershed")
	flag.Int64Var(&seed, "seed", 1, "world seed")
	flag.IntVar(&blocks, "blocks", 4, "chunk span per axis, in 16-node blocks")
	flag.IntVar(&waterLevel, "water-level", 1, "world water level")
	flag.StringVar(&out, "out", "terrain.png", "output PNG path")
	flag.Parse()

	size := int32(blocks) * mapgen.BlockSize
	vm := newRecordingVoxels()
	if err := generate(algo, int64(seed), int32(waterLevel), int32(blocks), size, vm); err != nil {
		log.Fatal(err)
	}

	img := renderHeightmap(vm, size)
	f, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", out, size, size)
}

func generate(algo string, seed int64, waterLevel, chunkSizeBlocks, size int32, vm *recordingVoxels) error {
	blockMin := mapgen.Vec3i{X: 0, Y: 0, Z: 0}
	blockMax := mapgen.Vec3i{X: size/mapgen.BlockSize - 1, Y: 0, Z: size/mapgen.BlockSize - 1}
	geom := mapgen.NewChunkGeometry(blockMin, blockMax)
	vm.bindArea(geom.Area())

	data := mapgen.BlockMakeData{
		VoxelManip:         vm,
		NodeDef:            stubRegistry{},
		BlockposMin:        blockMin,
		BlockposMax:        blockMax,
		BlockposRequested:  blockMin,
		TransformingLiquid: stubLiquid{},
	}

	switch algo {
	case "valleys":
		g, err := valleys.New(stubRegistry{}, valleys.Config{
			WorldSeed:       seed,
			WaterLevel:      waterLevel,
			Flags:           0,
			ChunkSizeBlocks: chunkSizeBlocks,
			Collaborators: mapgen.Collaborators{
				Biome: stubBiome{},
			},
			Params: paramstore.DefaultValleysParams(),
		})
		if err != nil {
			return err
		}
		g.MakeChunk(data)
	case "watershed":
		g, err := watershed.New(stubRegistry{}, watershed.Config{
			WorldSeed:       seed,
			WaterLevel:      waterLevel,
			Flags:           0,
			ChunkSizeBlocks: chunkSizeBlocks,
			Collaborators: mapgen.Collaborators{
				Biome: stubBiome{},
			},
			Params: paramstore.DefaultWatershedParams(),
		})
		if err != nil {
			return err
		}
		g.MakeChunk(data)
	default:
		return fmt.Errorf("unknown algorithm %q (want valleys or watershed)", algo)
	}
	return nil
}

// renderHeightmap walks the topmost non-air, non-ignore cell of every
// column and colors it by a fixed height ramp.
func renderHeightmap(vm *recordingVoxels, size int32) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, int(size), int(size)))
	area := vm.area

	for z := int32(0); z < size; z++ {
		for x := int32(0); x < size; x++ {
			h := vm.topSolidY(area, x, z)

			var c colorVec
			switch {
			case h <= oceanLevel:
				c = ramp[0].lerp(ramp[1], clamp01(float32(h)/float32(rockLevel)+0.5))
			case h <= sandLevel:
				c = ramp[2]
			case h <= grassLevel:
				c = ramp[2].lerp(ramp[3], clamp01(float32(h-sandLevel)*0.05))
			case h <= rockLevel:
				c = ramp[3].lerp(ramp[4], clamp01(float32(h-grassLevel)*0.02))
			default:
				c = ramp[4].lerp(ramp[5], clamp01(float32(h-rockLevel)*0.01))
			}
			img.Set(int(x), int(z), c.toColor())
		}
	}
	return img
}

func rgb(r, g, b byte) colorVec {
	const f = 1.0 / 255
	return colorVec{float32(r) * f, float32(g) * f, float32(b) * f}
}

func gray(v byte) colorVec { return rgb(v, v, v) }

func (c colorVec) lerp(o colorVec, t float32) colorVec {
	for i := range c {
		c[i] += (o[i] - c[i]) * t
	}
	return c
}

func (c colorVec) toColor() color.RGBA {
	return color.RGBA{R: toByte(c[0]), G: toByte(c[1]), B: toByte(c[2]), A: 255}
}

func toByte(f float32) byte {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	default:
		return byte(f * 255)
	}
}

func clamp01(f float32) float32 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
