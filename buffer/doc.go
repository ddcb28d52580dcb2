// Package buffer implements the rune-accurate document model for modus.
//
// Coordinates are 0-based (Row, Col) in runes. A Col equal to the line
// length addresses the position after the last rune of that line.
package buffer
