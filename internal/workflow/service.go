package workflow

import "context"

// Service mediates graph CRUD between handlers and the store.
type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateNode(ctx context.Context, req CreateNodeRequest) (Node, error) {
	node := Node{
		NodeID:         req.NodeID,
		Type:           NodeType(req.Type),
		Label:          req.Label,
		Capacity:       req.Capacity,
		ProcessingTime: req.ProcessingTime,
		Description:    req.Description,
		IsActive:       true,
	}
	if req.PositionX != nil {
		node.PositionX = *req.PositionX
	}
	if req.PositionY != nil {
		node.PositionY = *req.PositionY
	}
	if req.IsActive != nil {
		node.IsActive = *req.IsActive
	}
	return s.repo.CreateNode(node)
}

func (s *Service) GetNode(ctx context.Context, id int) (Node, error) {
	return s.repo.GetNode(id)
}

func (s *Service) ListNodes(ctx context.Context) []Node {
	return s.repo.ListNodes()
}

func (s *Service) UpdateNode(ctx context.Context, id int, req UpdateNodeRequest) (Node, error) {
	return s.repo.UpdateNode(id, req)
}

func (s *Service) DeleteNode(ctx context.Context, id int) bool {
	return s.repo.DeleteNode(id)
}

func (s *Service) CreateEdge(ctx context.Context, req CreateEdgeRequest) (Edge, error) {
	edge := Edge{
		EdgeID: req.EdgeID,
		Source: req.Source,
		Target: req.Target,
		Type:   req.Type,
		Label:  req.Label,
	}
	return s.repo.CreateEdge(edge)
}

func (s *Service) GetEdge(ctx context.Context, id int) (Edge, error) {
	return s.repo.GetEdge(id)
}

func (s *Service) ListEdges(ctx context.Context) []Edge {
	return s.repo.ListEdges()
}

func (s *Service) UpdateEdge(ctx context.Context, id int, req UpdateEdgeRequest) (Edge, error) {
	return s.repo.UpdateEdge(id, req)
}

func (s *Service) DeleteEdge(ctx context.Context, id int) bool {
	return s.repo.DeleteEdge(id)
}
