package orm

import (
	"github.com/gogo/protobuf/proto"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	proto.Message
	Validate() error
}

// Size returns the length of the serialized representation of given model.
// It is used to compute storage deposits.
func Size(m Model) int {
	return proto.Size(m)
}
