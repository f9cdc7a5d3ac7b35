// Package integrity provides dataset health checks.
//
// Unlike the 'regions' package which shapes individual records, this package
// validates a whole dataset before it is handed to the flashcard packager.
//
// # Checks Provided
//
//   - DataFiles: Verifies the presence of the items and titles JSON files.
//   - Images: Compares the image files in the resources directory with the
//     images the items reference (stray files vs missing files).
//   - Verify: Generates every record with warnings enabled, collects items whose
//     image is missing, then runs the image check. The report is invalid when
//     either step finds a problem.
//
// # Processing
//
// Process streams normalized records to a callback, which is where an external
// packager plugs in.
package integrity
