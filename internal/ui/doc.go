// Package ui contains the Bubble Tea program that presents the game catalog.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, search input, rendering, and player actions.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, mouse wheel, action results).
//   - Navigation helpers (navigation.go) translate keys into the browser's
//     intents: SetFilter, SelectGame and GoBack. Search input helpers
//     (input.go) edit the filter text at the caret and hand the result to the
//     browser.
//
// State ownership:
//   - The filter text and the selected game live in browser.Browser. The
//     active view and the visible games are derived from it on every render.
//   - The model only keeps presentation state: the library list cursor and
//     viewport (internal/ui/state.List), the search caret
//     (internal/ui/state.Caret) and the player viewport.
//
// Player actions (open in browser, open the player page, copy the link) run
// asynchronously through the internal/ui/command bus and report back with a
// command.Result that the model shows in its status line.
package ui
