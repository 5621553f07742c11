package id

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node *snowflake.Node
	once sync.Once
)

// Init initializes the Snowflake node with the given node ID.
func Init(nodeID int64) error {
	var err error
	once.Do(func() {
		node, err = snowflake.NewNode(nodeID)
	})
	return err
}

// New generates a new globally unique int64 ID using the Snowflake algorithm.
// IDs are time-ordered and unique across distributed instances.
func New() int64 {
	return node.Generate().Int64()
}

// Parse reads an ID in the decimal form it is serialized as in URLs and JSON.
func Parse(s string) (int64, error) {
	parsed, err := snowflake.ParseString(s)
	if err != nil {
		return 0, fmt.Errorf("parsing id %q: %w", s, err)
	}
	if parsed.Int64() <= 0 {
		return 0, fmt.Errorf("parsing id %q: must be positive", s)
	}
	return parsed.Int64(), nil
}
