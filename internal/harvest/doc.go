// Package harvest converts an open WACZ container into the flat harvest
// directory layout the downstream crawl-processing pipeline expects.
//
// The pipeline is a single synchronous pass: manifest metadata, harvest
// name, directory skeleton, capture relocation, capture rename, provenance
// record. Metadata failures happen before the first mkdir and leave the
// filesystem untouched. Failures after the skeleton exists leave a partial
// harvest tree behind; there is no rollback.
package harvest
