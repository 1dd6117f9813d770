// Package manifest loads and validates quest manifests (rqst.toml).
//
// Loading happens in three steps: the file is read, decoded as TOML, and its
// shape is checked against an embedded JSON schema before being mapped onto
// the typed Quest. Validate then checks content rules (non-empty required
// strings, at least one stage) in a fixed order and reports the first failure.
package manifest
