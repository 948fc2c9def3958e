// Package examples provides the pre-fill templates offered on the wizard's
// examples tab. Catalogues are YAML documents with a top-level `examples` list;
// each entry carries a `label`, an optional `summary` and a partial `values`
// map keyed by the names in package fields. Default returns the embedded
// catalogue, LoadFile and LoadFS read user supplied ones.
//
// Applying an example only ever writes the fields it sets. Fields it leaves
// empty keep whatever the user already typed.
package examples
