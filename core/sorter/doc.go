// Package sorter holds the startup configuration of the sorter itself.
//
// The values are only the initial state: the settings feature owns the live copy
// and lets operators change mode, verbosity and the sneak requirement at runtime.
package sorter
