// Package core defines the central Graph and Hypergraph containers used by
// every algorithm package in lvlcover.
//
// Graphs here are always undirected: covering problems (vertex cover, cycle
// cover, odd-cycle cover) are defined on undirected structure, so the
// container does not carry directedness at all. Vertices are identified by
// non-empty string IDs supplied by the caller; edges receive generated IDs
// ("e1", "e2", …) in insertion order.
//
// A Hypergraph extends the same vertex universe with nets: named sets of ≥2
// distinct vertices, the netlist view consumed by the hyperedge-cover oracle.
//
// Both containers guard their state with a sync.RWMutex, so concurrent
// readers (multiple simultaneous solves) are safe; mutation during a solve is
// the caller's responsibility to avoid, exactly as with lvlath's core.
//
// Determinism is a first-class contract: Vertices() and Nets() return sorted
// IDs, Edges() returns insertion order, and Neighbors() sorts by
// (neighbor ID, edge ID). Algorithm packages rely on these orders for
// reproducible results.
package core
