package errors

// Error code constants.
// Format: CATEGORY_SPECIFIC_DETAIL; clients map these to display messages.

const (
	// ==================== Auth (AUTH_) ====================
	AuthUnauthorized       = "AUTH_UNAUTHORIZED"        // admin session required
	AuthInvalidCredentials = "AUTH_INVALID_CREDENTIALS" // wrong username/password
	AuthSessionExpired     = "AUTH_SESSION_EXPIRED"     // session cookie expired
	AuthSessionInvalid     = "AUTH_SESSION_INVALID"     // malformed session cookie

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT" // bad form data
	ValidationInvalidID    = "VALIDATION_INVALID_ID"    // non-numeric identifier
	ValidationInvalidLang  = "VALIDATION_INVALID_LANG"  // unsupported language

	// ==================== Resources (RESOURCE_) ====================
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	ProductNotFound  = "PRODUCT_NOT_FOUND"

	// ==================== Uploads (UPLOAD_) ====================
	UploadFailed = "UPLOAD_FAILED" // object store rejected the new asset

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
