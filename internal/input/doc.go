// Package input defines the actions that user input is translated into.
//
// Raw terminal events are normalized by the renderer backend, routed
// through the mouse processor chain (see the mouse subpackage) and end up
// either consumed by a processor, such as the autoscroll gesture, or
// converted to an Action that the application executes.
package input
