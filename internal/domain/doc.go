// Package domain contains the core model for fetchcontacts.
//
// The domain is store- and format-agnostic: it does not depend on SQLite, vCard, YAML, JSON,
// or the filesystem. Infra adapters map platform contacts into these types and render the
// resulting ExportMapping.
package domain
