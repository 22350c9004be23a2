package workflow

// CreateNodeRequest is the full insert schema for POST /api/workflow/nodes.
// NodeID may be omitted; the store then assigns the next node-{n} key.
// IsActive defaults to true when absent.
type CreateNodeRequest struct {
	NodeID         string  `json:"nodeId"`
	Type           string  `json:"type" validate:"required,oneof=warehouse factory transport retailer customer"`
	Label          string  `json:"label" validate:"required"`
	PositionX      *int    `json:"positionX" validate:"required"`
	PositionY      *int    `json:"positionY" validate:"required"`
	Capacity       *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	ProcessingTime *int    `json:"processingTime,omitempty" validate:"omitempty,gte=0"`
	Description    *string `json:"description,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// UpdateNodeRequest is the partial schema for PUT /api/workflow/nodes/{id}.
type UpdateNodeRequest struct {
	NodeID         *string `json:"nodeId,omitempty"`
	Type           *string `json:"type,omitempty" validate:"omitempty,oneof=warehouse factory transport retailer customer"`
	Label          *string `json:"label,omitempty"`
	PositionX      *int    `json:"positionX,omitempty"`
	PositionY      *int    `json:"positionY,omitempty"`
	Capacity       *int    `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	ProcessingTime *int    `json:"processingTime,omitempty" validate:"omitempty,gte=0"`
	Description    *string `json:"description,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}

// CreateEdgeRequest is the full insert schema for POST /api/workflow/edges.
// EdgeID may be omitted; the store then assigns the next edge-{n} key.
type CreateEdgeRequest struct {
	EdgeID string  `json:"edgeId"`
	Source string  `json:"source" validate:"required"`
	Target string  `json:"target" validate:"required"`
	Type   string  `json:"type" validate:"required"`
	Label  *string `json:"label,omitempty"`
}

// UpdateEdgeRequest is the partial schema for PUT /api/workflow/edges/{id}.
type UpdateEdgeRequest struct {
	EdgeID *string `json:"edgeId,omitempty"`
	Source *string `json:"source,omitempty"`
	Target *string `json:"target,omitempty"`
	Type   *string `json:"type,omitempty"`
	Label  *string `json:"label,omitempty"`
}
