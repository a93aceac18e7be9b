// Package logfile writes entries to an slf log file.
//
// Entries are kept newest first: each write reads the whole file, puts the
// new line in front and writes everything back. The rewrite goes through a
// temporary file in the same directory and a rename, so readers see either
// the old or the new content, never a torn file.
//
// There is no locking. Two concurrent writers both read the old content and
// the last rename wins, dropping the other entry. slf is a single-user tool
// and accepts that.
package logfile
