package core

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrEmptyNetID indicates that the provided net ID is empty.
	ErrEmptyNetID = errors.New("core: net ID is empty")

	// ErrNetTooSmall indicates a net with fewer than two distinct members.
	ErrNetTooSmall = errors.New("core: net needs at least two distinct members")

	// ErrDuplicateNet indicates a net ID that already exists.
	ErrDuplicateNet = errors.New("core: duplicate net ID")

	// ErrNetNotFound indicates an operation referenced a non-existent net.
	ErrNetNotFound = errors.New("core: net not found")
)

// Hypergraph is the netlist view: a vertex universe plus named nets,
// each net being a set of ≥2 distinct vertices.
//
// Adding a net auto-registers its member vertices, so fixtures can be
// written as a flat list of AddNet calls.
type Hypergraph struct {
	mu sync.RWMutex

	vertices map[string]struct{}
	nets     map[string][]string // net ID → sorted distinct member IDs
}

// NewHypergraph creates an empty Hypergraph.
// Complexity: O(1)
func NewHypergraph() *Hypergraph {
	return &Hypergraph{
		vertices: make(map[string]struct{}),
		nets:     make(map[string][]string),
	}
}

// AddVertex inserts a vertex with the given ID (idempotent).
// Returns ErrEmptyVertexID for an empty ID.
func (h *Hypergraph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	h.vertices[id] = struct{}{}

	return nil
}

// AddNet inserts a net with the given ID and members.
// Members are deduplicated; the distinct set must have size ≥2
// (ErrNetTooSmall). Duplicate net IDs are rejected (ErrDuplicateNet),
// empty IDs with ErrEmptyNetID / ErrEmptyVertexID.
// Complexity: O(k log k) for k members
func (h *Hypergraph) AddNet(id string, members ...string) error {
	if id == "" {
		return ErrEmptyNetID
	}
	distinct := make(map[string]struct{}, len(members))
	for _, m := range members {
		if m == "" {
			return ErrEmptyVertexID
		}
		distinct[m] = struct{}{}
	}
	if len(distinct) < 2 {
		return ErrNetTooSmall
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.nets[id]; exists {
		return ErrDuplicateNet
	}

	set := make([]string, 0, len(distinct))
	for m := range distinct {
		set = append(set, m)
		h.vertices[m] = struct{}{}
	}
	sort.Strings(set)
	h.nets[id] = set

	return nil
}

// Nets returns all net IDs sorted ascending.
// Complexity: O(N log N)
func (h *Hypergraph) Nets() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.nets))
	for id := range h.nets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// NetMembers returns a copy of the sorted member set of the net,
// or ErrNetNotFound.
// Complexity: O(k)
func (h *Hypergraph) NetMembers(id string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set, ok := h.nets[id]
	if !ok {
		return nil, ErrNetNotFound
	}
	out := make([]string, len(set))
	copy(out, set)

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (h *Hypergraph) Vertices() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	ids := make([]string, 0, len(h.vertices))
	for id := range h.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// HasVertex reports whether the vertex exists.
func (h *Hypergraph) HasVertex(id string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, ok := h.vertices[id]

	return ok
}

// VertexCount returns the number of vertices.
func (h *Hypergraph) VertexCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.vertices)
}

// NetCount returns the number of nets.
func (h *Hypergraph) NetCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.nets)
}
