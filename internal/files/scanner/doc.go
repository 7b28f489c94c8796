// Package scanner discovers the XML article documents under a path.
//
// A path naming a file is taken as a single document whatever its extension.
// A directory is walked recursively for *.xml files; hidden directories are
// skipped. Results are sorted by relative path.
package scanner
