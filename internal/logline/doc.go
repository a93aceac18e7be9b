// Package logline defines the on-disk line convention of an slf log file.
//
// Every line has the form
//
//	<timestamp>: <message>
//
// where timestamp is UTC in the fixed, zero-padded layout "2006-01-02 15:04".
// The layout is fixed-width so that plain byte-wise string ordering of whole
// lines coincides with chronological ordering. Query filters rely on this:
// they compare raw lines against bounds and never parse timestamps back.
//
// Tags are "#word" substrings inside the message. They are not a separate
// field and are only recovered by substring search at query time.
package logline
