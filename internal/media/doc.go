// Package media holds the library records shared by the parser and the
// naming engine: series, episodes, episode files and air dates.
//
// These are plain values. Persistence belongs to the caller; nothing in this
// package reads or writes storage.
package media
