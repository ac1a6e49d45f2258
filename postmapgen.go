// SPDX-FileCopyrightText: 2024 voxelgen contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package mapgen

// PostMapgen exposes individual pipeline passes as standalone operations
// over a caller-supplied volume, for scripting/embedding layers that want
// to re-run one pass (say, after a script edits terrain) without driving a
// full MakeChunk call. It reuses the same Collaborators a Base pipeline
// would use; nothing here infers semantics beyond "invoke one pass against
// an externally bound volume and bounds", per the documented Open Question
// this supplements.
type PostMapgen struct {
	Collaborators Collaborators
	Blockseed     uint32

	nodeMin, nodeMax Vec3i
	areaSet          bool
}

// SetArea binds the node bounds later calls act on. When min/max are the
// zero value, callers should pass explicit bounds; there is no voxel
// manipulator to infer a default extent from here.
func (p *PostMapgen) SetArea(nodeMin, nodeMax Vec3i) {
	p.nodeMin, p.nodeMax = nodeMin, nodeMax
	p.areaSet = true
}

func (p *PostMapgen) requireArea() {
	if !p.areaSet {
		panic("mapgen: PostMapgen pass invoked before SetArea")
	}
}

// GenerateBiomes re-runs the biome generator's placement pass.
func (p *PostMapgen) GenerateBiomes() {
	p.requireArea()
	if p.Collaborators.Biome != nil {
		p.Collaborators.Biome.GenerateBiomes()
	}
}

// PlaceOres re-runs ore placement over the bound area.
func (p *PostMapgen) PlaceOres() {
	p.requireArea()
	if p.Collaborators.Ores != nil {
		p.Collaborators.Ores.PlaceAllOres(p.Blockseed, p.nodeMin, p.nodeMax)
	}
}

// PlaceDecorations re-runs decoration placement over the bound area.
func (p *PostMapgen) PlaceDecorations() {
	p.requireArea()
	if p.Collaborators.Decos != nil {
		p.Collaborators.Decos.PlaceAllDecos(p.Blockseed, p.nodeMin, p.nodeMax)
	}
}

// DustTopNodes re-runs the top-node dust pass.
func (p *PostMapgen) DustTopNodes() {
	p.requireArea()
	if p.Collaborators.Dust != nil {
		p.Collaborators.Dust.DustTopNodes()
	}
}
