package domain

import "errors"

// ErrNotFound indicates that an entity, workspace or scenario does not exist
// in the requested context.
var ErrNotFound = errors.New("not found")

// ErrTemporalOrder indicates that a mutation carries an effective date earlier
// than the identity's existing history. Time only moves forward per identity.
var ErrTemporalOrder = errors.New("effective date predates existing history")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates an attempt to create a record that already exists.
var ErrDuplicate = errors.New("already exists")
