// Package obs provides Go bindings to the libobs (OBS Studio) data API:
// the dynamically typed, JSON-like settings objects used throughout OBS
// for source settings, scene collections, and profiles.
//
// Key pieces include:
//   - DataObj: a mutable key/value container (obs_data_t)
//   - DataArray: an ordered container of DataObj values (obs_data_array_t)
//   - DataType: the closed tag set {String, Int, Double, Boolean, Object, Array}
//   - Get/Set/SetDefault: generic, type-tag-checked field access
//   - RedirectLogs: forwards libobs's internal log stream to a logrus logger
//
// # Native Library
//
// Bindings load libobs dynamically at runtime via purego, so the package
// builds with CGO_ENABLED=0 and needs no OBS headers. Set OBS_LIBRARY_PATH
// to the shared library file, or OBS_LIBRARY_DIR to the directory holding
// it; otherwise standard install locations are searched. Call Load to
// surface a missing library as an error; constructors panic if libobs
// cannot be loaded.
//
// # Ownership
//
// Every DataObj and DataArray owns exactly one native reference and must be
// released exactly once with Release (idempotent; methods on released
// handles report absence). Nested objects and arrays extracted from a
// parent acquire their own native reference at extraction time, so they
// remain valid after the parent is released and are released independently.
// Build with -tags leakcheck to track live native handles.
//
// # Absence Semantics
//
// Missing fields, out-of-range indices, type-tag mismatches, and JSON
// parse/serialization failures all report absence through a comma-ok
// result, mirroring libobs's "null means absent" convention. Panics are
// reserved for binding/version mismatches and programmer errors
// (unrecognized native type tags, array schema defaults, refcount
// invariant violations).
//
// # Supported Platforms
//
// Linux and macOS. On other platforms only the pure-Go pieces (DataType,
// the leak tracker types) compile.
package obs
