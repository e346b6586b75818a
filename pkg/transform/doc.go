// Package transform implements the archive rewriting steps applied before a
// package is deployed.
//
// Every Transform is a pure function of its input archive and run context:
// it never edits the archive it receives and returns either a new archive
// or, when it has nothing to do, the input itself. A transform that fails
// returns no archive at all, so a caller never sees a partially applied
// step.
//
// Kinds:
//
//   - find_replace: ContentReplace rewrites entry bodies.
//   - find_replace_filenames: FilenameReplace rewrites bodies, then names.
//   - clean_meta_xml: CleanMetaXML drops <packageVersions> from -meta.xml files.
//   - strip_manifest_blocks: ManifestPrune drops marker entries and their
//     manifest declarations.
package transform
