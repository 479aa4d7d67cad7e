// Package store persists calcpad's CLI settings on disk.
//
// Files live under the config home (default ~/.calcpad) as indented JSON with
// mode 0600. Writes go to a temp file in the same directory that is then
// renamed over the target, so a crash never leaves a half-written file.
// A missing file reads as zero values rather than an error.
package store
