package xbee

import "errors"

var (
	ErrMalformedSample     = errors.New("malformed io sample")
	ErrUnknownCommand      = errors.New("unknown cluster command")
	ErrUnsupportedEndpoint = errors.New("endpoint has no pin mapping")
	ErrUnsupportedCommand  = errors.New("command is not a pin write")
)
