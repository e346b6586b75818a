// Package manifest works on the text of a deployment manifest
// (package.xml).
//
// Block removal deliberately avoids an XML parser. A declaration block is
// the fixed grammar
//
//	<types> (<members>M</members>)* <name>KIND</name> </types>
//
// with arbitrary whitespace between the parts. RemoveBlocks deletes every
// block for one kind together with the whitespace that follows it, and
// leaves every other byte of the document untouched. The grammar is bounded
// to this one manifest format; it is not a markup editor.
//
// Summarize is the read-only side: it parses the manifest with etree to
// report which kinds and members it declares.
package manifest
