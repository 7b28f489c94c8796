// Package xmltree adapts parsed XML documents to the jatsmeta.Node interface.
//
// Documents are parsed with github.com/antchfx/xmlquery, which provides the
// XPath evaluation behind Node.Query. Namespaced attributes are matched by
// local name plus either their document prefix or their namespace URI, so
// "xlink:href" resolves whether the document binds the xlink namespace to the
// conventional prefix or not.
package xmltree
