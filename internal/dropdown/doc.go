// Package dropdown implements the searchable single-select combobox.
//
// The package is split in three layers:
//
//  1. Transition is a pure function from (Rules, State, Event) to the next State plus a list of
//     Intents. It owns every rule about opening, filtering, focus traversal and commits and can be
//     tested without a terminal.
//  2. Machine holds one State for the lifetime of a widget and applies the intents: it invokes the
//     caller's OnChange callback and turns focus intents into sequenced FocusCommands through a
//     FocusCoordinator. Only the latest command may be applied, so a focus move requested by an
//     earlier transition never lands after a newer one.
//  3. Model adapts the Machine to bubbletea. Keys and pointer messages become Events, focus
//     commands become deferred tea.Cmds that run after the frame for the new state is rendered,
//     and commits are reported with ChangeMsg.
//
// The widget is controlled: the caller owns the selected value and pushes it back with Sync.
// A value that is not in the catalog renders the placeholder instead of failing.
package dropdown
