// Package datagen runs asset and data-generation callbacks during the
// host's gather-data pass.
//
// Callbacks are grouped by the ProviderType of their output. A callback
// may be associated with one owning entry name, in which case at most one
// callback exists per (entry, type) pair and a later association replaces
// the earlier one; unassociated callbacks only ever accumulate. Run
// invokes all of a type's callbacks in insertion order against a concrete
// Provider, which buffers documents and can save them as JSON files in
// the conventional pack layout.
package datagen
