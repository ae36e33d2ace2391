package pack

import (
	"github.com/hashicorp/hcl/v2"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/registrar"
)

// fileSchema is the top-level structure of one content .hcl file.
type fileSchema struct {
	Blocks        []*blockHCL       `hcl:"block,block"`
	Items         []*itemHCL        `hcl:"item,block"`
	Entities      []*entityHCL      `hcl:"entity,block"`
	BlockEntities []*blockEntityHCL `hcl:"block_entity,block"`
	Fluids        []*fluidHCL       `hcl:"fluid,block"`
}

type blockHCL struct {
	Name        string         `hcl:"name,label"`
	DisplayName string         `hcl:"display_name,optional"`
	DefaultItem bool           `hcl:"default_item,optional"`
	Group       string         `hcl:"group,optional"`
	Properties  hcl.Expression `hcl:"properties,optional"`
}

type itemHCL struct {
	Name        string         `hcl:"name,label"`
	DisplayName string         `hcl:"display_name,optional"`
	Group       string         `hcl:"group,optional"`
	Properties  hcl.Expression `hcl:"properties,optional"`
}

type entityHCL struct {
	Name           string         `hcl:"name,label"`
	DisplayName    string         `hcl:"display_name,optional"`
	Classification string         `hcl:"classification,optional"`
	Properties     hcl.Expression `hcl:"properties,optional"`
}

type blockEntityHCL struct {
	Name       string         `hcl:"name,label"`
	Properties hcl.Expression `hcl:"properties,optional"`
}

type fluidHCL struct {
	Name        string         `hcl:"name,label"`
	DisplayName string         `hcl:"display_name,optional"`
	StillTex    string         `hcl:"still_texture,optional"`
	FlowTex     string         `hcl:"flow_texture,optional"`
	Bucket      bool           `hcl:"bucket,optional"`
	Properties  hcl.Expression `hcl:"properties,optional"`
}

// The format-agnostic spec values the loader produces. They are also
// what the factories hand the host registry at commit time.

// BlockSpec describes one block-like entry.
type BlockSpec struct {
	Name        string
	DisplayName string
	DefaultItem bool
	Group       string
	Properties  map[string]any
}

// ItemSpec describes one item-like entry.
type ItemSpec struct {
	Name        string
	DisplayName string
	Group       string
	Properties  map[string]any
}

// EntitySpec describes one entity-like entry.
type EntitySpec struct {
	Name           string
	DisplayName    string
	Classification registrar.Classification
	Properties     map[string]any
}

// BlockEntitySpec describes one container/tile entry.
type BlockEntitySpec struct {
	Name       string
	Properties map[string]any
}

// FluidSpec describes one fluid-like entry. Zero-valued texture IDs mean
// "use the registrar's naming convention".
type FluidSpec struct {
	Name        string
	DisplayName string
	StillTex    engine.ID
	FlowTex     engine.ID
	Bucket      bool
	Properties  map[string]any
}

// Pack is a fully loaded content pack.
type Pack struct {
	Descriptor    *Descriptor
	Blocks        []*BlockSpec
	Items         []*ItemSpec
	Entities      []*EntitySpec
	BlockEntities []*BlockEntitySpec
	Fluids        []*FluidSpec
}

// Len reports the total number of declared objects.
func (p *Pack) Len() int {
	return len(p.Blocks) + len(p.Items) + len(p.Entities) + len(p.BlockEntities) + len(p.Fluids)
}
