// Package dbfilter implements the three line-level Mealy machines that
// narrow a `make -np` database dump down to its file-definition section:
// the database-section filter, the file-section filter, and the
// informational-comment filter. Each is a stateful iter.Condition[Line]
// driven by equality against literal anchor lines, never by parsing.
package dbfilter
