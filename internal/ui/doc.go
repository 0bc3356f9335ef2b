// Package ui is the runtime behind the game client's interface.
//
// Core abstractions:
//   - Component / Window: a named box with append/remove lifecycle and hooks (Init, OnKeyDown, OnAppend, OnRemove)
//   - Manager: registry of live components, display tree, overflow correction on resize
//   - InputStack: key-down listeners, most recently prioritized first, with Stop to end propagation
//   - Dialog: modal windows cloned from the "WinPopup" template (error, message, prompt)
//   - OverlayStack: full-screen layers that block pointer input beneath them
//   - KeybindRegistry / KeyHandler: global SPC-prefixed hotkeys, the bottom listener
//   - AppModel: Bubble Tea host that renders the Manager in a terminal
//
// All of it runs on the Bubble Tea update loop; nothing here is safe for
// concurrent use.
package ui
