// Package pipeline assembles the transform sequence for a deploy and runs
// it over an archive.
//
// A deploy framework supplies a base transform list. Assemble upgrades every
// plain content replacement in that list to a filename-aware one, keeping
// its position and patterns, and appends manifest pruning last so it sees
// the final entry names. Run applies the list in order and records a Step
// for each transform.
package pipeline
