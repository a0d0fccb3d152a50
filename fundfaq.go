// Package fundfaq answers factual questions about mutual funds from a small,
// fixed catalog of FAQ records. Free-text queries are matched against each
// record's keywords and the best scoring record is returned together with a
// citation link.
//
// This package contains domain types, interfaces and the matcher following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., inmem/, http/,
// slog/).
package fundfaq
