package audio

import (
	"errors"
	"fmt"
)

var ErrUnavailable = errors.New("audio output unavailable")

type OpError struct {
	Op   string
	Clip string
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.Clip != "" {
		return fmt.Sprintf("%s %s clip: %v", e.Op, e.Clip, e.Err)
	}
	return fmt.Sprintf("%s audio: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }
