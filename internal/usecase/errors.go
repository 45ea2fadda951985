package usecase

import "errors"

var ErrNotFound = errors.New("resource not found")
