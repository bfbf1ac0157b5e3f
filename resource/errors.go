package resource

import "errors"

var errNotResolved = errors.New("resource has not resolved")
