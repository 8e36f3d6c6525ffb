// Package ui contains the Bubble Tea program that powers the menu engine.
// The package is structured so the Model type focuses on message
// orchestration, while dedicated helpers own navigation, popups, dispatch,
// and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Update routes each message through a typed handler registry so every
//     tea.Msg is handled by a focused function (key presses, window resizes,
//     operation results, loaded choice lists).
//   - While a popup is up, key messages go to the popup handler and the view
//     beneath is frozen. Dismissing the popup restores the view unchanged.
//
// State ownership:
//   - Each view's selectable entries live in an internal/ui/state.List, which
//     tracks wraparound selection.
//   - The menu catalog comes from internal/menu and is immutable; the model
//     only moves cursors and switches views.
//   - Operations run through the internal/ui/command bus, which wraps a
//     registered task into a tea.Cmd and posts the outcome back as a
//     command.Result. Quitting and view changes happen synchronously inside
//     Update and never travel through the result channel.
//
// Rendering is a pure function of the model: View draws the active view,
// then composites the popup box over it with ANSI-aware line splicing.
package ui
