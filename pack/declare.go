package pack

import (
	"context"
	"fmt"

	"github.com/vk/modforge/internal/ctxlog"
	"github.com/vk/modforge/registrar"
)

// DeclareAll feeds every spec in the pack through the registrar's fluent
// builders, so pack content takes the same deferral and data-generation
// path as hand-written registrations. Nothing is constructed here; the
// factories simply hand the spec values to the host registry at commit
// time.
func (p *Pack) DeclareAll(ctx context.Context, r *registrar.Registrar) error {
	if r.Namespace() != p.Descriptor.Namespace {
		return fmt.Errorf("pack namespace %q does not match registrar namespace %q",
			p.Descriptor.Namespace, r.Namespace())
	}
	logger := ctxlog.FromContext(ctx)

	for _, spec := range p.Blocks {
		spec := spec
		b := r.BlockNamed(spec.Name, func() (any, error) { return spec, nil })
		if spec.DisplayName != "" {
			b.Lang(spec.DisplayName)
		}
		if spec.DefaultItem {
			b.DefaultItem()
		}
		if spec.Group != "" {
			group := spec.Group
			b.Group(func() string { return group })
		}
		b.Register()
	}

	for _, spec := range p.Items {
		spec := spec
		b := r.ItemNamed(spec.Name, func(props registrar.ItemProperties) (any, error) {
			if spec.Group == "" {
				spec.Group = props.Group
			}
			return spec, nil
		})
		if spec.DisplayName != "" {
			b.Lang(spec.DisplayName)
		}
		if spec.Group != "" {
			group := spec.Group
			b.Group(func() string { return group })
		}
		b.Register()
	}

	for _, spec := range p.Entities {
		spec := spec
		b := r.EntityNamed(spec.Name, func(props registrar.EntityProperties) (any, error) {
			return spec, nil
		}, spec.Classification)
		if spec.DisplayName != "" {
			b.Lang(spec.DisplayName)
		}
		b.Register()
	}

	for _, spec := range p.BlockEntities {
		spec := spec
		r.BlockEntityNamed(spec.Name, func() (any, error) { return spec, nil }).Register()
	}

	for _, spec := range p.Fluids {
		spec := spec
		b := r.FluidNamed(spec.Name, func(props registrar.FluidProperties) (any, error) {
			// Fold the convention-derived textures back into the spec.
			if spec.StillTex.Path == "" {
				spec.StillTex = props.StillTexture
			}
			if spec.FlowTex.Path == "" {
				spec.FlowTex = props.FlowingTexture
			}
			return spec, nil
		})
		if spec.DisplayName != "" {
			b.Lang(spec.DisplayName)
		}
		if spec.StillTex.Path != "" && spec.FlowTex.Path != "" {
			b.Textures(spec.StillTex, spec.FlowTex)
		}
		if spec.Bucket {
			b.Bucket()
		}
		b.Register()
	}

	logger.Debug("Pack declarations captured.", "namespace", p.Descriptor.Namespace, "objects", p.Len())
	return nil
}
