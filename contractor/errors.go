package contractor

import "errors"

// ErrSameNode indicates Pair was asked to merge a node with itself.
var ErrSameNode = errors.New("contractor: cannot merge a node with itself")
