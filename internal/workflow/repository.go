package workflow

import (
	"fmt"
	"sort"
	"sync"

	"github.com/chainboard/chainboard/internal/shared"
)

// Repository holds both graph collections. Node and edge keys are unique
// across their collection; key generation lives here so that a single counter
// per collection survives concurrent clients (the source let each client seed
// its own counter from the record count, which collides).
type Repository struct {
	mu sync.RWMutex

	nodesByID  map[int]*Node
	nodeByKey  map[string]int
	nextNodeID int
	nodeKeySeq int

	edgesByID  map[int]*Edge
	edgeByKey  map[string]int
	nextEdgeID int
	edgeKeySeq int
}

// NewRepository constructs an empty graph store.
func NewRepository() *Repository {
	return &Repository{
		nodesByID:  make(map[int]*Node),
		nodeByKey:  make(map[string]int),
		nextNodeID: 1,
		edgesByID:  make(map[int]*Edge),
		edgeByKey:  make(map[string]int),
		nextEdgeID: 1,
	}
}

// CreateNode assigns the next id and inserts the node. An empty key is
// replaced by the next free node-{n}; a duplicate key is rejected with
// shared.ErrConflict.
func (r *Repository) CreateNode(n Node) (Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n.NodeID == "" {
		n.NodeID = r.nextNodeKey()
	} else if _, taken := r.nodeByKey[n.NodeID]; taken {
		return Node{}, fmt.Errorf("nodeId %q: %w", n.NodeID, shared.ErrConflict)
	}
	n.ID = r.nextNodeID
	r.nextNodeID++
	r.nodesByID[n.ID] = &n
	r.nodeByKey[n.NodeID] = n.ID
	return n, nil
}

// GetNode returns the node with the given integer id.
func (r *Repository) GetNode(id int) (Node, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.nodesByID[id]
	if !ok {
		return Node{}, shared.ErrNotFound
	}
	return *n, nil
}

// ListNodes returns all nodes sorted by id.
func (r *Repository) ListNodes() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Node, 0, len(r.nodesByID))
	for _, n := range r.nodesByID {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateNode shallow-merges the partial payload onto the stored node.
// Optional fields already set keep their value unless the payload names them.
func (r *Repository) UpdateNode(id int, req UpdateNodeRequest) (Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodesByID[id]
	if !ok {
		return Node{}, shared.ErrNotFound
	}
	if req.NodeID != nil && *req.NodeID != n.NodeID {
		if _, taken := r.nodeByKey[*req.NodeID]; taken {
			return Node{}, fmt.Errorf("nodeId %q: %w", *req.NodeID, shared.ErrConflict)
		}
		delete(r.nodeByKey, n.NodeID)
		r.nodeByKey[*req.NodeID] = id
		n.NodeID = *req.NodeID
	}
	if req.Type != nil {
		n.Type = NodeType(*req.Type)
	}
	if req.Label != nil {
		n.Label = *req.Label
	}
	if req.PositionX != nil {
		n.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		n.PositionY = *req.PositionY
	}
	if req.Capacity != nil {
		n.Capacity = req.Capacity
	}
	if req.ProcessingTime != nil {
		n.ProcessingTime = req.ProcessingTime
	}
	if req.Description != nil {
		n.Description = req.Description
	}
	if req.IsActive != nil {
		n.IsActive = *req.IsActive
	}
	return *n, nil
}

// DeleteNode removes the node and reports whether it existed. Edges
// referencing its key are left in place.
func (r *Repository) DeleteNode(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.nodesByID[id]
	if !ok {
		return false
	}
	delete(r.nodeByKey, n.NodeID)
	delete(r.nodesByID, id)
	return true
}

// CreateEdge assigns the next id and inserts the edge. An empty key is
// replaced by the next free edge-{n}; a duplicate key is rejected with
// shared.ErrConflict. Source and target are stored as given, whether or not a
// matching node exists.
func (r *Repository) CreateEdge(e Edge) (Edge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.EdgeID == "" {
		e.EdgeID = r.nextEdgeKey()
	} else if _, taken := r.edgeByKey[e.EdgeID]; taken {
		return Edge{}, fmt.Errorf("edgeId %q: %w", e.EdgeID, shared.ErrConflict)
	}
	e.ID = r.nextEdgeID
	r.nextEdgeID++
	r.edgesByID[e.ID] = &e
	r.edgeByKey[e.EdgeID] = e.ID
	return e, nil
}

// GetEdge returns the edge with the given integer id.
func (r *Repository) GetEdge(id int) (Edge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.edgesByID[id]
	if !ok {
		return Edge{}, shared.ErrNotFound
	}
	return *e, nil
}

// ListEdges returns all edges sorted by id.
func (r *Repository) ListEdges() []Edge {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Edge, 0, len(r.edgesByID))
	for _, e := range r.edgesByID {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// UpdateEdge shallow-merges the partial payload onto the stored edge.
func (r *Repository) UpdateEdge(id int, req UpdateEdgeRequest) (Edge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.edgesByID[id]
	if !ok {
		return Edge{}, shared.ErrNotFound
	}
	if req.EdgeID != nil && *req.EdgeID != e.EdgeID {
		if _, taken := r.edgeByKey[*req.EdgeID]; taken {
			return Edge{}, fmt.Errorf("edgeId %q: %w", *req.EdgeID, shared.ErrConflict)
		}
		delete(r.edgeByKey, e.EdgeID)
		r.edgeByKey[*req.EdgeID] = id
		e.EdgeID = *req.EdgeID
	}
	if req.Source != nil {
		e.Source = *req.Source
	}
	if req.Target != nil {
		e.Target = *req.Target
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Label != nil {
		e.Label = req.Label
	}
	return *e, nil
}

// DeleteEdge removes the edge and reports whether it existed.
func (r *Repository) DeleteEdge(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.edgesByID[id]
	if !ok {
		return false
	}
	delete(r.edgeByKey, e.EdgeID)
	delete(r.edgesByID, id)
	return true
}

// nextNodeKey returns the next unused node-{n} key. Callers hold the lock.
// The sequence skips keys a client supplied itself.
func (r *Repository) nextNodeKey() string {
	for {
		r.nodeKeySeq++
		key := fmt.Sprintf("node-%d", r.nodeKeySeq)
		if _, taken := r.nodeByKey[key]; !taken {
			return key
		}
	}
}

// nextEdgeKey returns the next unused edge-{n} key. Callers hold the lock.
func (r *Repository) nextEdgeKey() string {
	for {
		r.edgeKeySeq++
		key := fmt.Sprintf("edge-%d", r.edgeKeySeq)
		if _, taken := r.edgeByKey[key]; !taken {
			return key
		}
	}
}
