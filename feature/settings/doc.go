// Package settings owns the live sorter settings and the chat commands that change them.
//
// Settings are immutable values held by a Store; each command swaps in a new
// version, so a sort that already read its configuration is never affected by a
// concurrent change.
//
// # Commands
//
//   - /sortmode <alpha|count|type>: sets the ordering policy.
//   - /sortverbose <on|off>: toggles per-sort feedback.
//   - /sortanywhere: toggles whether interacting without sneaking triggers a sort.
//
// Only operators may run them. In a single-player world everyone is an operator;
// otherwise the player needs the "operator" tag.
//
// # Endpoints
//
//   - GET /settings
//   - POST /settings/commands
package settings
