package transform

import (
	"github.com/cesnet/augyang/pkg/identifier"
	"github.com/cesnet/augyang/pkg/ynode"
)

// AssignIdentifiers is pipeline step 12.
func AssignIdentifiers(t *ynode.Tree) error {
	return identifier.Assign(t)
}
