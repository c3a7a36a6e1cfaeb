// Package services defines shared utilities consumed by the external tool
// integrations under internal/services.
//
// Errors returned by integrations carry one of the marker errors below so
// callers can tell a missing or crashing tool apart from a replay the tool
// rejected, without parsing messages.
package services
