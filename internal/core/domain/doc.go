// Package domain defines the core entities for refslim.
//
// This package is the innermost layer of the hexagon. It defines:
//
//   - ReferenceEntry: one documented symbol as found in the source dataset
//   - SlimEntry: the reduced three-field projection of a ReferenceEntry
//   - Reference / SlimReference: ordered, symbol-keyed collections of entries
//   - Settings: where to read from, where to write to, and how
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
