// Package pipeline runs batch work over a media folder: discovery, parallel
// parsing, rename planning, and applying the plan. It is the only package
// that touches the filesystem, always through an afero.Fs.
//
// Flow:
//
//	Discover(fs, root) → []File
//	Scan(ctx, files, workers) → []Item      parse every path, input order kept
//	Plan(fs, root, items, naming cfg) → []Rename
//	Apply(ctx, fs, plan, dryRun, log) → RunStats
//
// [Run] chains all four for the rename command and logs a summary.
package pipeline
