package speech

import "errors"

// Common errors for the conversion pipeline.
var (
	// Input validation errors
	ErrNoText     = errors.New("no text to convert")
	ErrNoAudioDir = errors.New("no audio directory selected")

	// Playback errors
	ErrNoPlayer = errors.New("no clip player configured")
)
