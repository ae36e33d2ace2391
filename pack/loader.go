package pack

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/modforge/engine"
	"github.com/vk/modforge/internal/ctxlog"
	"github.com/vk/modforge/internal/fsutil"
	"github.com/vk/modforge/registrar"
)

// Loader parses content packs from disk.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a pack loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the pack at dir: its pack.yaml descriptor and every .hcl
// content file below it, recursively.
func (l *Loader) Load(ctx context.Context, dir string) (*Pack, error) {
	logger := ctxlog.FromContext(ctx)

	descriptor, err := LoadDescriptor(filepath.Join(dir, "pack.yaml"))
	if err != nil {
		return nil, err
	}
	logger.Debug("Pack descriptor loaded.", "namespace", descriptor.Namespace, "name", descriptor.Name)

	filePaths, err := fsutil.FindFilesByExtension(dir, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("walking pack directory %s: %w", dir, err)
	}
	if len(filePaths) == 0 {
		logger.Warn("No .hcl content files found in pack.", "path", dir)
	}

	p := &Pack{Descriptor: descriptor}
	for _, filePath := range filePaths {
		hclFile, diags := l.parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse content file %s: %w", filePath, diags)
		}

		var schema fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &schema); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode content file %s: %w", filePath, diags)
		}
		if err := p.translate(&schema); err != nil {
			return nil, fmt.Errorf("invalid content in %s: %w", filePath, err)
		}
		logger.Debug("Loaded content file.", "file", filePath)
	}

	logger.Info("Content pack loaded.", "namespace", descriptor.Namespace, "objects", p.Len())
	return p, nil
}

// translate appends one decoded file's declarations to the pack.
func (p *Pack) translate(schema *fileSchema) error {
	for _, b := range schema.Blocks {
		props, err := evalProperties(b.Properties)
		if err != nil {
			return fmt.Errorf("block %q: %w", b.Name, err)
		}
		p.Blocks = append(p.Blocks, &BlockSpec{
			Name:        b.Name,
			DisplayName: b.DisplayName,
			DefaultItem: b.DefaultItem,
			Group:       b.Group,
			Properties:  props,
		})
	}
	for _, it := range schema.Items {
		props, err := evalProperties(it.Properties)
		if err != nil {
			return fmt.Errorf("item %q: %w", it.Name, err)
		}
		p.Items = append(p.Items, &ItemSpec{
			Name:        it.Name,
			DisplayName: it.DisplayName,
			Group:       it.Group,
			Properties:  props,
		})
	}
	for _, e := range schema.Entities {
		props, err := evalProperties(e.Properties)
		if err != nil {
			return fmt.Errorf("entity %q: %w", e.Name, err)
		}
		classification := registrar.Classification(e.Classification)
		if classification == "" {
			classification = registrar.ClassificationMisc
		}
		switch classification {
		case registrar.ClassificationCreature, registrar.ClassificationMonster,
			registrar.ClassificationAmbient, registrar.ClassificationMisc:
		default:
			return fmt.Errorf("entity %q: unknown classification %q", e.Name, e.Classification)
		}
		p.Entities = append(p.Entities, &EntitySpec{
			Name:           e.Name,
			DisplayName:    e.DisplayName,
			Classification: classification,
			Properties:     props,
		})
	}
	for _, be := range schema.BlockEntities {
		props, err := evalProperties(be.Properties)
		if err != nil {
			return fmt.Errorf("block_entity %q: %w", be.Name, err)
		}
		p.BlockEntities = append(p.BlockEntities, &BlockEntitySpec{
			Name:       be.Name,
			Properties: props,
		})
	}
	for _, f := range schema.Fluids {
		props, err := evalProperties(f.Properties)
		if err != nil {
			return fmt.Errorf("fluid %q: %w", f.Name, err)
		}
		spec := &FluidSpec{
			Name:        f.Name,
			DisplayName: f.DisplayName,
			Bucket:      f.Bucket,
			Properties:  props,
		}
		if f.StillTex != "" {
			id, err := engine.ParseID(f.StillTex)
			if err != nil {
				return fmt.Errorf("fluid %q: still_texture: %w", f.Name, err)
			}
			spec.StillTex = id
		}
		if f.FlowTex != "" {
			id, err := engine.ParseID(f.FlowTex)
			if err != nil {
				return fmt.Errorf("fluid %q: flow_texture: %w", f.Name, err)
			}
			spec.FlowTex = id
		}
		p.Fluids = append(p.Fluids, spec)
	}
	return nil
}
