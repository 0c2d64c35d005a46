// Package archivist converts the loosely structured HTML pages of a
// legacy music fan site into normalized records describing artists,
// albums, tracks, lyrics, live performances, and images, suitable for
// a content-driven front end.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency or concern
// (e.g., goquery/, extract/, migrate/, fs/).
package archivist
