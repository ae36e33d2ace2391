// Package registrar is the fluent front door of the toolkit.
//
// A Registrar owns one registration ledger and one data-generation
// dispatcher for a single namespace, and layers a builder-chain API on
// top: Object sets the current name, the kind helpers (Item, Block,
// Entity, BlockEntity, Fluid) open a builder for that name, and each
// builder's Register declares the entry and returns its forward-reference
// handle.
//
//	r := registrar.Create("mymod", bus)
//
//	gear := r.Object("gear").
//		Item(func(p registrar.ItemProperties) (any, error) {
//			return newGearItem(p.Group), nil
//		}).
//		Lang("Gear").
//		Register()
//
// Exactly one builder chain may be in progress per Registrar at a time.
// Nested or concurrent chains silently corrupt the current-name cursor;
// the registrar does not detect this.
package registrar
