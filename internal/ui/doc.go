// Package ui contains the Bubble Tea program that hosts the select widgets in
// a tmux popup.
//
// Message flow:
//   - Bubble Tea invokes Model.Update, which looks the message up in a typed
//     handler registry (keys, mouse, resize).
//   - Key presses go to the Router first. The Router hands them to the focused
//     widget only; whatever the widget does not consume falls through to the
//     global bindings (Tab, Shift+Tab, quit).
//   - Mouse events are hit-tested by the Router against every mounted widget.
//     A press that lands outside all of them blurs the focused widget.
//
// State ownership:
//   - The Model owns the selections. Widgets report proposed values through
//     their onChange callbacks; the Model stores the value and hands it back
//     with SetValue.
//   - Widgets own only their open flag, highlighted row, viewport and focus
//     target. Their screen origins are recomputed after every update because
//     an open list pushes the panels below it down.
package ui
