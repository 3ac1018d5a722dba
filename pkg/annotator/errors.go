package annotator

import "errors"

// ErrNotFound is returned by collaborator lookups when the requested
// entity does not exist. The annotator treats it as "nothing to
// contribute" and continues; every other collaborator error propagates
// to the host pipeline untouched.
var ErrNotFound = errors.New("record not found")
