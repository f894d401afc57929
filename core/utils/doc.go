// Package utils provides loose type conversion helpers.
// They normalise values coming from raw SQL rows, query strings and chat command
// arguments, where the concrete type depends on the driver or the caller.
package utils
