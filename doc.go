// Package toon is a bidirectional codec for TOON, a line-oriented,
// indentation-sensitive, human-readable data format for JSON-equivalent
// trees. It converts between *Value trees (null, bool, number, string,
// array, object) and TOON text.
//
// Encode walks a tree and picks, for every array, one of three shapes
// (inline, tabular, or expanded list) by the precedence rules the format
// defines. Decode reverses the process, tracking an explicit line cursor
// so every error carries an exact line number.
package toon
