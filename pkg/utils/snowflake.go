package utils

import (
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

var node *snowflake.Node

// InitSnowflake builds the process-wide ID node. Worker ids must be unique
// per running instance or generated ids will collide.
func InitSnowflake(workerID int64) error {
	var err error
	node, err = snowflake.NewNode(workerID)
	if err != nil {
		return errors.WithMessage(err, "snowflake node init failed")
	}
	return nil
}

// GenerateID returns a new unique int64 id.
func GenerateID() int64 {
	if node == nil {
		_ = InitSnowflake(1)
	}
	return node.Generate().Int64()
}
