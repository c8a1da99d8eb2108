// Package decoders groups the per-format text decoders.
//
// Each subpackage implements driven.Decoder for one format family:
//
//   - plaintext: verbatim UTF-8 text and HTML markup
//   - jsondoc: JSON re-serialised with stable indentation
//   - xmldoc: XML re-serialised from the root element
//   - table: CSV/TSV row canonicalisation
//   - spreadsheet: XLSX workbooks rendered as aligned tables
//   - wordml: DOCX paragraphs, one per line
//   - yamldoc: YAML block-style re-serialisation (optional, noyaml tag)
//
// Decoders are stateless and independent; selection happens in the
// core registry, keyed by the domain format table.
package decoders
