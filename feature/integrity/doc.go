// Package integrity provides health checks for the container backends.
//
// Sorting itself verifies every write, so these checks look for damage that
// happened outside a sort: hand-edited rows, partially written objects or a
// schema that drifted from the models.
//
// # Checks Provided
//
//   - Structure: Checks that the containers/ and journal/ folders exist in the storage bucket.
//   - Server: Validates the container tables against the GORM models (columns, types).
//   - Contents: Loads every stored container and reports overstacked slots and unreadable
//     containers. On the database backend it also reports orphaned slot rows.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
//   - GET /integrity/contents : Runs contents check.
package integrity
