package main

import "github.com/pkg/errors"

var (
	errInvalidStep    = errors.New("step must be positive")
	errInvalidRadius  = errors.New("radius must be non-negative")
	errInvalidWidth   = errors.New("width must be positive")
	errInvalidRatio   = errors.New("ratio must be in (0, 1]")
	errInvalidFactory = errors.New("factory must be one of seed, linear, random, ratio")
)
