package availability

import "errors"

var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrDuplicateID      = errors.New("blockade id already exists")
	ErrBlockadeNotFound = errors.New("blockade not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrCouldNotRelease  = errors.New("could not release blocked time")
	ErrBatchOwned       = errors.New("batch id belongs to another resource")
	ErrCorruptHistory   = errors.New("stored event cannot be applied")
)
