package repositories

import "errors"

// ErrDuplicateKey is returned by Create/Update when a unique constraint
// rejects the write (share code, album name per owner, user email/username).
// Implementations translate their driver's duplicate-key error to this one
// so services can retry or surface a conflict without knowing the store.
var ErrDuplicateKey = errors.New("duplicate key")
