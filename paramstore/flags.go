// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import (
	"strings"

	"github.com/voxelgen/mapgen"
)

// FlagDesc names one bit of a mapgen.Flags bitmask for string (de)serialization.
type FlagDesc struct {
	Name string
	Bit  mapgen.Flags
}

// getFlagStr parses a comma-separated token list, e.g. "altitude_chill,nocanyons".
// Unknown tokens are ignored. A token prefixed with "no" clears the flag;
// setting a flag twice is idempotent, and a later "no<flag>" cancels an
// earlier "<flag>" (tokens apply in left-to-right order).
func getFlagStr(store KVStore, key string, desc []FlagDesc, cur mapgen.Flags) mapgen.Flags {
	raw, ok := store.GetString(key)
	if !ok {
		return cur
	}
	return parseFlagStr(raw, desc, cur)
}

func parseFlagStr(raw string, desc []FlagDesc, base mapgen.Flags) mapgen.Flags {
	result := base
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		negate := false
		name := tok
		if strings.HasPrefix(tok, "no") && len(tok) > 2 {
			negate = true
			name = tok[2:]
		}
		for _, d := range desc {
			if d.Name == name {
				if negate {
					result &^= d.Bit
				} else {
					result |= d.Bit
				}
				break
			}
		}
	}
	return result
}

// setFlagStr renders every recognized flag in desc order as a comma-joined
// token list, emitting "no<name>" for unset bits so the written string is
// self-contained: parsing it back against any base value reproduces flags
// exactly, rather than only ever adding bits on top of a caller-supplied
// default.
func setFlagStr(store KVStore, key string, desc []FlagDesc, flags mapgen.Flags) {
	var toks []string
	for _, d := range desc {
		if flags&d.Bit != 0 {
			toks = append(toks, d.Name)
		} else {
			toks = append(toks, "no"+d.Name)
		}
	}
	store.SetString(key, strings.Join(toks, ","))
}
