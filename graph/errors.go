package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrSampleCount matches any *SampleCountError.
	ErrSampleCount = errors.New("sample count mismatch")
	// ErrNoSampler is returned when a renderer has no sampling function.
	ErrNoSampler = errors.New("no sampling function")
)

// SampleCountError reports a sampling function that returned the wrong
// number of samples. It is a configuration error: nothing was painted.
type SampleCountError struct {
	Renderer string
	Width    int
	Height   int
	Want     int
	Got      int
}

func (e *SampleCountError) Error() string {
	return fmt.Sprintf("%s graph: sampling %dx%d returned %d samples, want %d",
		e.Renderer, e.Width, e.Height, e.Got, e.Want)
}

// Is reports whether target is ErrSampleCount.
func (e *SampleCountError) Is(target error) bool {
	return target == ErrSampleCount
}
