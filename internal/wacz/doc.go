// Package wacz reads WACZ web-archive containers.
//
// A WACZ file is a zip archive with a datapackage.json manifest at the root,
// capture files under archive/, and optional index files under indexes/. The
// package exposes the container's entries and a validated Metadata record
// derived from the manifest; it never mutates the container.
package wacz
