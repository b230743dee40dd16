package types

import "errors"

// ErrNotFound is returned by repositories when no record matches the given
// keys. An owner mismatch is reported with the same error so that callers
// cannot distinguish "absent" from "not yours".
var ErrNotFound = errors.New("record not found")
