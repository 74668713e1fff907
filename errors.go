package ggfu

import "errors"

// ErrInvalidArgument reports a script input outside its domain,
// such as a non-positive sphere radius.
var ErrInvalidArgument = errors.New("ggfu: invalid argument")
