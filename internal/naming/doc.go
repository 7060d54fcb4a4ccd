// Package naming renders canonical file and folder names from episode
// records and a user-editable [Config].
//
// A format string such as
//
//	{Series Title} - S{season}E{episode} - {Episode Title} [{Quality}]
//
// is parsed into a [Template]: a flat list of literal and token parts. A
// "{season}", a short literal and an "{episode}" next to each other form a
// single season/episode group so multi-episode files can be expanded as a
// unit (see [MultiEpisodeStyle]).
//
// Rendering is pure: it never touches the filesystem and returns the same
// string for the same input. Substituted values go through case folding,
// separator replacement and illegal-character replacement, in that order.
// Literal text from the format is copied verbatim.
//
// The package also holds the helpers used when planning renames for a batch
// of files: [CollisionResolver] and series-title year harmonization.
package naming
