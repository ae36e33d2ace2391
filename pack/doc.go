// Package pack loads declarative content packs.
//
// A content pack is a directory with a pack.yaml descriptor (namespace,
// pack name, version) and any number of .hcl files declaring game
// objects:
//
//	block "copper_block" {
//	  display_name = "Block of Copper"
//	  default_item = true
//	  properties   = { hardness = 3.0 }
//	}
//
//	item "copper_ingot" {
//	  group = "materials"
//	}
//
// The loader translates the HCL into format-agnostic spec values, and
// Pack.DeclareAll feeds those through the fluent registrar exactly the
// way hand-written Go registrations would go, so packs and code share
// one deferral and data-generation path. The spec values double as the
// constructed objects at commit time; real game-object semantics live in
// the host engine, not here.
package pack
