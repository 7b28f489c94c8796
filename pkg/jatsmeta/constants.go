package jatsmeta

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // All documents validated without ERROR diagnostics
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or correspondence table
	ExitMalformedXML     = 11 // A document could not be parsed
	ExitValidationFailed = 12 // At least one diagnostic at ERROR level or above
	ExitNoDocuments      = 13 // No XML documents found at the given path
)

// Element tags that name a scope.
const (
	TagArticle    = "article"
	TagSubArticle = "sub-article"
)

// Canonical date types shared by extractors and validators.
const (
	DateTypePub        = "pub"
	DateTypeCollection = "collection"
	DateTypePreprint   = "preprint"
)

// RelatedTypePreprint is the related-article-type that references a preprint.
const RelatedTypePreprint = "preprint"
