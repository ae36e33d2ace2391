// Package engine defines the collaboration contract with the host game
// engine.
//
// The toolkit itself never constructs or owns game objects; it only
// bookkeeps deferred registrations. The host side of that bargain is
// expressed here: a Kind names a capability registry ("block", "item",
// ...), an ID is the fully-qualified name of one entry, a Registry is the
// write sink for one Kind, and the Bus carries the two lifecycle signals
// the host fires: registry-open (a Kind's registry accepts writes now)
// and gather-data (the asset-generation pass runs now).
//
// Engine is a small in-process reference host used by the CLI and the
// test suite. A real game engine replaces it wholesale; everything else
// in this module only depends on the interfaces.
package engine
