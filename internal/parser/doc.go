// Package parser turns free-form release titles and file paths into
// structured episode identities.
//
// Parsing happens in three stages:
//
//  1. [Normalize] folds a raw title into a canonical, space-separated form.
//  2. [Match] runs the ordered [Rules] table over the normalized text. The
//     first recognizer that accepts wins; later rules never see the input.
//  3. [ParseTitle] and [ParsePath] combine the match with the detected
//     quality and the release group from [ParseReleaseGroup].
//
// Nothing here touches the filesystem or holds mutable state. Every exported
// function is safe for concurrent use.
package parser
