package store

import "errors"

// ErrInvalidDocument is returned by Import for payloads that are not a mind
// map document. The message is safe to show to the user.
var ErrInvalidDocument = errors.New("invalid mind map document")

// ErrNodeNotFound is returned by ExpandNode when the target node does not
// exist at the time the expansion starts.
var ErrNodeNotFound = errors.New("node not found")
