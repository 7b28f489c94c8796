// Package files groups the input side of the CLI: a filesystem abstraction
// and the discovery of article documents on it.
//
//	import (
//	    "github.com/vvka-141/jatsmeta/internal/files/filesystem"
//	    "github.com/vvka-141/jatsmeta/internal/files/scanner"
//	)
//
//	docs, err := scanner.NewScanner().Scan("./packages")
//
// Neither package is used by the validation core, which only sees parsed trees.
package files
