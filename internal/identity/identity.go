// Package identity derives stable document identifiers for reports.
package identity

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/jatsmeta/pkg/jatsmeta"
)

// NamespaceDocument is the UUID v5 namespace of document identities, derived
// from the URL namespace and "jatsmeta/document-identity/v1".
var NamespaceDocument = uuid.NewSHA1(uuid.NameSpaceURL, []byte("jatsmeta/document-identity/v1"))

// ArticleDOI returns the DOI declared in the root article-meta, or "".
func ArticleDOI(root jatsmeta.Node) string {
	n := jatsmeta.QueryOne(root, `./front/article-meta/article-id[@pub-id-type="doi"]`)
	if n == nil {
		return ""
	}
	return strings.TrimSpace(n.Text())
}

// DocumentID identifies a document by its DOI when it declares one, so the
// same article keeps its ID across packages and renames. Otherwise the
// identity falls back to the normalized path.
func DocumentID(root jatsmeta.Node, path string) uuid.UUID {
	if doi := ArticleDOI(root); doi != "" {
		return uuid.NewSHA1(NamespaceDocument, []byte("doi:"+strings.ToLower(doi)))
	}
	return uuid.NewSHA1(NamespaceDocument, []byte("path:"+normalizePath(path)))
}

// normalizePath lowercases, uses forward slashes and drops a leading "./".
func normalizePath(path string) string {
	normalized := strings.ToLower(strings.ReplaceAll(path, "\\", "/"))
	return strings.TrimPrefix(normalized, "./")
}
