// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package paramstore

import jsoniter "github.com/json-iterator/go"

// debugJSON is configured for readable, stable-order dumps of resolved
// params for diagnostics, not for wire serialization.
var debugJSON = jsoniter.Config{
	IndentionStep:           2,
	MarshalFloatWith6Digits: true,
	SortMapKeys:             true,
}.Froze()

// DumpValleysJSON renders p for diagnostics.
func DumpValleysJSON(p ValleysParams) (string, error) {
	b, err := debugJSON.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DumpWatershedJSON renders p for diagnostics.
func DumpWatershedJSON(p WatershedParams) (string, error) {
	b, err := debugJSON.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
