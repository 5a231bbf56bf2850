// Package catalog models the read-only product catalog and the multi-field
// product search over it. The catalog itself is supplied by an external source at
// session start; this package only defines the Product value object and the pure
// Filter function used by the presentation layer on every query.
package catalog
