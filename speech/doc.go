// Package speech implements the text-to-phoneme pipeline: splitting raw text
// into lowercase word tokens and pause markers, resolving every word to an
// ARPABET phoneme string through a pronunciation dictionary with a rule-based
// fallback, and sequencing clip playback with timed pauses.
package speech
