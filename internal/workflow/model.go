// Package workflow holds the supply-chain graph: nodes for facilities and
// transports, edges for the connections a user draws between them. Nodes and
// edges carry a string key (nodeId/edgeId) used by the diagram layer; it is
// distinct from the storage integer id.
package workflow

// NodeType enumerates the facility kinds a node may represent.
type NodeType string

const (
	NodeWarehouse NodeType = "warehouse"
	NodeFactory   NodeType = "factory"
	NodeTransport NodeType = "transport"
	NodeRetailer  NodeType = "retailer"
	NodeCustomer  NodeType = "customer"
)

// Node is a vertex in the supply-chain graph. Position is the canvas
// coordinate the diagram layer persists on drag release.
type Node struct {
	ID             int      `json:"id"`
	NodeID         string   `json:"nodeId"`
	Type           NodeType `json:"type"`
	Label          string   `json:"label"`
	PositionX      int      `json:"positionX"`
	PositionY      int      `json:"positionY"`
	Capacity       *int     `json:"capacity"`
	ProcessingTime *int     `json:"processingTime"`
	Description    *string  `json:"description"`
	IsActive       bool     `json:"isActive"`
}

// Edge is a directed connection between two node keys. Source and target are
// soft references: they are not checked against the node collection, and
// deleting a node does not cascade to edges referencing it.
type Edge struct {
	ID     int     `json:"id"`
	EdgeID string  `json:"edgeId"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Label  *string `json:"label"`
}
