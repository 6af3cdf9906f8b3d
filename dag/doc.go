// Package dag provides a directed acyclic graph over opaque string
// node identities, with deterministic topological ordering (Kahn's
// algorithm) and cycle rejection at edge-insertion time.
//
// Node insertion order and edge insertion order are both preserved,
// so TopologicalSort is reproducible across runs of the same program.
// The graph is the scheduling substrate for the pipeline package.
package dag
