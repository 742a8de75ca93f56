// Package templates loads the catalog of project and module templates offered
// in the template list. The default catalog is embedded in the binary; a user
// catalog file can replace it. Catalogs are validated against an embedded
// JSON Schema before use.
package templates
