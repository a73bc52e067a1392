package dock

import "errors"

var (
	ErrNotLeaf             = errors.New("dock: node is not a leaf")
	ErrNilWindow           = errors.New("dock: nil window")
	ErrWindowHosted        = errors.New("dock: window already hosted by node")
	ErrWindowNotHosted     = errors.New("dock: window not hosted by node")
	ErrDuplicateIdentifier = errors.New("dock: identifier already in use")
	ErrReleasedNode        = errors.New("dock: node was released")
)
