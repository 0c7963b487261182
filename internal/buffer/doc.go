// Package buffer owns the growable byte buffer used to build command strings
// and serialized fragments.
//
// Ownership boundary:
// - storage growth and reservation
// - raw byte appends
// - space-separated value formatting
package buffer
