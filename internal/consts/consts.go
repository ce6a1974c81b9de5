package consts

import (
	"errors"
)

var (
	ErrNilParam             = errors.New(`nil parameter`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)

const (
	LibraryName = `termcaps`
)
