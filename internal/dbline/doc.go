// Package dbline defines the Line value type used throughout the makefile
// database parse pipeline.
//
// A Line is a string guaranteed to contain no interior line terminator. It
// is the unit the line source, section filters, and comment filter all
// operate on (spec data model, "Line").
package dbline
