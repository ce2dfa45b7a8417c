package core

import (
	"sort"
	"strconv"
)

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex exists.
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// AddEdge inserts an undirected edge u—v and returns its generated ID.
// Missing endpoints are created implicitly. Policy violations surface as
// ErrLoopNotAllowed / ErrMultiEdgeNotAllowed; empty IDs as ErrEmptyVertexID.
// Complexity: O(1) amortized
func (g *Graph) AddEdge(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if u == v && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.allowMulti && len(g.adjacency[u][v]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	// Implicit vertex creation keeps fixture code terse (lvlath behavior).
	g.vertices[u] = struct{}{}
	g.vertices[v] = struct{}{}

	g.nextEdgeID++
	eid := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[eid] = &Edge{ID: eid, U: u, V: v}
	g.edgeOrder = append(g.edgeOrder, eid)

	g.bucket(u, v)[eid] = struct{}{}
	if u != v {
		g.bucket(v, u)[eid] = struct{}{}
	}

	return eid, nil
}

// bucket returns (allocating on demand) the edge-ID set for the pair u→v.
// Caller must hold the write lock.
func (g *Graph) bucket(u, v string) map[string]struct{} {
	row, ok := g.adjacency[u]
	if !ok {
		row = make(map[string]map[string]struct{})
		g.adjacency[u] = row
	}
	cell, ok := row[v]
	if !ok {
		cell = make(map[string]struct{})
		row[v] = cell
	}

	return cell
}

// HasEdge reports whether at least one edge joins u and v (in either order).
// Complexity: O(1)
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u][v]) > 0
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1)
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if absent. Endpoint vertices remain.
// Complexity: O(E) (insertion-order slice compaction)
func (g *Graph) RemoveEdge(eid string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	delete(g.adjacency[e.U][e.V], eid)
	if e.U != e.V {
		delete(g.adjacency[e.V][e.U], eid)
	}
	for i, id := range g.edgeOrder {
		if id == eid {
			g.edgeOrder = append(g.edgeOrder[:i], g.edgeOrder[i+1:]...)
			break
		}
	}

	return nil
}

// Vertices returns all vertex IDs sorted ascending.
// This order is the fixed total order every algorithm package relies on.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// Neighbors returns every edge incident to id, sorted by
// (neighbor ID, numeric edge ID). A self-loop appears once.
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	for _, cell := range g.adjacency[id] {
		for eid := range cell {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ni, _ := out[i].Other(id)
		nj, _ := out[j].Other(id)
		if ni != nj {
			return ni < nj
		}

		return lessEdgeID(out[i].ID, out[j].ID)
	})

	return out, nil
}

// NeighborIDs returns the distinct neighbor vertex IDs of id, sorted
// ascending. A self-loop contributes id itself.
// Complexity: O(deg log deg)
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(g.adjacency[id]))
	for nbr, cell := range g.adjacency[id] {
		if len(cell) > 0 {
			out = append(out, nbr)
		}
	}
	sort.Strings(out)

	return out, nil
}

// Degree returns the number of edge endpoints at id (a self-loop counts 2).
// Returns ErrVertexNotFound for an unknown vertex.
// Complexity: O(deg)
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	d := 0
	for nbr, cell := range g.adjacency[id] {
		if nbr == id {
			d += 2 * len(cell) // both loop endpoints land on id
			continue
		}
		d += len(cell)
	}

	return d, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// lessEdgeID orders generated edge IDs ("e1", "e2", …) numerically:
// shorter IDs carry smaller numbers, equal lengths compare lexically.
func lessEdgeID(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}

	return a < b
}
