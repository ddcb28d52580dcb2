// Package session implements the modal editing engine of modus.
//
// A Session owns one buffer, its cursor, the viewport and the active mode.
// Front-ends feed it InputEvents one at a time and paint the RenderModel it
// produces after every event. Key interpretation is a pure function of the
// active mode and the event (Translate); the session applies the resulting
// intents.
package session
