// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/post, domain/identity).
// This root package holds sentinel errors and the field-level validation type.
package domain
