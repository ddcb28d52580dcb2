// Package editor provides a Bubble Tea component that hosts a modal editing
// session.
//
// The component classifies key messages with a bubbles/key KeyMap, feeds
// them to a session.Session and renders the session's RenderModel with
// lipgloss styles: line-number gutter, a cursor drawn in the shape of the
// active mode, and a status line.
package editor
