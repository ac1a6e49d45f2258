// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import (
	"fmt"
	"strings"

	"github.com/voxelgen/mapgen/noise"
)

var noiseFlagDesc = []struct {
	name string
	bit  noise.Flag
}{
	{"eased", noise.FlagEased},
	{"absvalue", noise.FlagAbsValue},
	{"defaults", noise.FlagDefaults},
}

// getNoiseParams reads "offset,scale,spreadX,spreadY,spreadZ,seed,octaves,
// persistence,lacunarity,flagstring" from key, falling back to cur
// wholesale if the key is absent or malformed: a noise parameter set is
// read atomically, matching the original Settings::getNoiseParams
// contract.
func getNoiseParams(store KVStore, key string, cur noise.Params) noise.Params {
	raw, ok := store.GetString(key)
	if !ok {
		return cur
	}
	parsed, ok := parseNoiseParams(raw)
	if !ok {
		return cur
	}
	return parsed
}

func setNoiseParams(store KVStore, key string, p noise.Params) {
	store.SetString(key, formatNoiseParams(p))
}

func parseNoiseParams(raw string) (noise.Params, bool) {
	fields := strings.Split(raw, ",")
	if len(fields) < 9 {
		return noise.Params{}, false
	}
	var p noise.Params
	var seed, octaves int64
	n, err := fmt.Sscanf(strings.Join(fields[:9], ","),
		"%g,%g,%g,%g,%g,%d,%d,%g,%g",
		&p.Offset, &p.Scale, &p.Spread.X, &p.Spread.Y, &p.Spread.Z,
		&seed, &octaves, &p.Persistence, &p.Lacunarity)
	if err != nil || n != 9 {
		return noise.Params{}, false
	}
	p.SeedSalt = int32(seed)
	p.Octaves = int32(octaves)
	if len(fields) > 9 {
		p.Flags = parseNoiseFlagStr(strings.Join(fields[9:], ","))
	}
	return p, true
}

func formatNoiseParams(p noise.Params) string {
	var toks []string
	for _, d := range noiseFlagDesc {
		if p.Flags&d.bit != 0 {
			toks = append(toks, d.name)
		}
	}
	return fmt.Sprintf("%g,%g,%g,%g,%g,%d,%d,%g,%g,%s",
		p.Offset, p.Scale, p.Spread.X, p.Spread.Y, p.Spread.Z,
		p.SeedSalt, p.Octaves, p.Persistence, p.Lacunarity, strings.Join(toks, ","))
}

func parseNoiseFlagStr(raw string) noise.Flag {
	var result noise.Flag
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		negate := false
		name := tok
		if strings.HasPrefix(tok, "no") && len(tok) > 2 {
			negate = true
			name = tok[2:]
		}
		for _, d := range noiseFlagDesc {
			if d.name == name {
				if negate {
					result &^= d.bit
				} else {
					result |= d.bit
				}
				break
			}
		}
	}
	return result
}
