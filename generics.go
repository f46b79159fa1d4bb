package graphwalk

//Direction represents the orientation of a single hop of a path relative to the previous node.
type Direction int

const (
	Outgoing Direction = 0 //previous node -> this node
	Incoming Direction = 1 //this node -> previous node
)

//Operation represents the kind of statement sent to the database. It labels logs and metrics.
type Operation int

const (
	CountNodes Operation = iota
	GetNodes
	WriteNode
	WriteConnection
	DeleteConnection
	DeleteNodeAndConnections
)

var operationNames = [...]string{
	CountNodes:               "count_nodes",
	GetNodes:                 "get_nodes",
	WriteNode:                "write_node",
	WriteConnection:          "write_connection",
	DeleteConnection:         "delete_connection",
	DeleteNodeAndConnections: "delete_node_and_connections",
}

func (o Operation) String() string {
	if o < 0 || int(o) >= len(operationNames) {
		return "unknown"
	}
	return operationNames[o]
}

//runBatch applies apply to every item in order and stops at the first failure.
//It returns the number of items that completed before the failure.
func runBatch[Item any](items []Item, apply func(Item) error) (int, error) {
	for index, item := range items {
		if err := apply(item); err != nil {
			return index, err
		}
	}
	return len(items), nil
}
