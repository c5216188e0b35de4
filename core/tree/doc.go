// Package tree is the client of the legacy tree-structured attribute backend.
//
// Nodes are addressed by slash separated paths (e.g. "Item/Consume/0200.img/02000000/spec")
// and expose the names of their children plus an optional scalar value. Payloads are
// read with gjson because the backend's node shape varies between node types.
package tree
