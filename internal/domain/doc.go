// Package domain contains the core entities and the partitioning logic for
// splitfile.
//
// This package is the innermost layer of the tool. It has no dependencies on
// infrastructure concerns (file system, terminal, logging) and contains only
// the pure arithmetic of splitting a line sequence into file buckets.
//
// # Entities
//
//   - [Directive]: The split instruction, a closed variant of "fixed lines
//     per file" vs "fixed number of files"
//   - [Range]: A half-open interval of body line indices
//   - [Plan]: The ordered per-file ranges produced by [Partition]
//
// Plans are always contiguous, non-overlapping and cover the whole body
// exactly once, so concatenating the ranges reproduces the source order.
package domain
