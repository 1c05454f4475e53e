// internal/i18n/keys.go
package i18n

const (
	KeyValidationInvalid = "validation.invalid"

	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAdminAccessDenied = "auth.access_denied"
	KeyAuthDenied        = "auth.denied"

	KeyBookCreated  = "book.created"
	KeyBookUpdated  = "book.updated"
	KeyBookDeleted  = "book.deleted"
	KeyBookNotFound = "book.not_found"

	KeyCatalogReset      = "catalog.reset"
	KeyPersistenceFailed = "persistence.failed"

	KeyRateLimited = "rate.limited"
)
