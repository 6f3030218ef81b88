// Package ui contains the Bubble Tea program that powers the window switcher.
// The Model type focuses on message orchestration, while dedicated helpers own
// loading, navigation, input, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse clicks, resizes, frame polls).
//   - While the window list is outstanding, a pollMsg is scheduled every frame.
//     Each poll takes a non-blocking look at the backend.Handoff slot filled by
//     the enumeration goroutine. A delivery, or the load timeout passing, moves
//     the model to Ready for the rest of its life and polling stops.
//   - Commit resolves the selected row to a window, hands its ID to the
//     command bus (which launches a detached focus request), and quits.
//     Cancel quits without focusing.
//
// State ownership:
//   - internal/ui/state.Level holds the window snapshot, the query, the ranked
//     view over the snapshot, and the cursor into it. Every query change
//     re-ranks and moves the cursor back to the best match.
package ui
