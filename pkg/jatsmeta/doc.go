// Package jatsmeta defines the public contracts of the JATS/SPS metadata
// validation engine.
//
// # Overview
//
// The engine reads a parsed article document through the Node capability
// interface, attributes every fact to a scope (the root article or one of its
// sub-articles), and evaluates correspondence rules between the declared
// article type and the dates and related-articles it finds. The only output
// is a sequence of Diagnostic records.
//
// # Tree Access
//
// Node is deliberately small so any XML library can back it:
//
//	root, err := xmltree.ParseBytes(data)
//	if err != nil {
//	    return err // wraps jatsmeta.ErrMalformedXML
//	}
//	for d := range eng.Validate(root) {
//	    fmt.Println(d.Title, d.Response, d.Message)
//	}
//
// # Diagnostics
//
// Every Diagnostic carries attribution (Parent, ParentID, ParentArticleType,
// ParentLang), the compared values (Expected, Obtained), a derived Message,
// remediation Advice on failure, and the offending fact in Data.
package jatsmeta
