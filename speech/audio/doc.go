// Package audio plays phoneme clips through the system sound device. Clips
// are decoded whole (16-bit PCM WAV or MP3) and played one at a time,
// blocking until each finishes, so the sequencer's ordering guarantees hold.
package audio
