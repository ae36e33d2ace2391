package engine

// Kind identifies one capability registry of the host engine. The set is
// open: content may declare entries under kinds the host never opens, and
// those entries simply stay pending.
type Kind string

// The standard kinds every reference host owns.
const (
	KindBlock       Kind = "block"
	KindFluid       Kind = "fluid"
	KindItem        Kind = "item"
	KindEntity      Kind = "entity"
	KindBlockEntity Kind = "block_entity"
)

// StandardKinds returns the built-in kinds in registry-open order. Blocks
// and fluids open before items so that companion items can resolve their
// block handles during construction.
func StandardKinds() []Kind {
	return []Kind{KindBlock, KindFluid, KindItem, KindEntity, KindBlockEntity}
}
