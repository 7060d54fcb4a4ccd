// Package quality infers a ranked release quality from a normalized release
// title.
//
// Detection is an ordered cascade: a resolution pass and a source pass each
// pick the first pattern that hits, and the pair is looked up in a fixed
// table. Revision markers (PROPER, REPACK, anime v2, REAL) are detected
// separately. Every input yields a [Model]; [Unknown] is the lowest-ranked
// member of the order, never an error.
//
// The token vocabulary used by detection is also exported through [IsToken]
// so release-group extraction can reject quality lookalikes.
package quality
