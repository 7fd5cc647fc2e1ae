// Package wrangler contains the core components of Wrangler, a toolkit for
// schema-driven cleaning of roadway and transit network tables. This root
// package defines the types which are employed during regular use of the
// toolkit - Tables, Schemas and the column Projection which prunes a Table
// to match its declared data model.
package wrangler
