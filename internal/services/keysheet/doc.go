// Package keysheet manages named machine settings.
//
// It normalises and validates settings before they are stored, so a sheet
// that loads is always one the machine can be built from.
package keysheet
