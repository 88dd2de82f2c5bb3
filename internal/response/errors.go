package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrFieldsRequired     ErrCode = "FIELDS_REQUIRED"
	ErrInvalidEmailFormat ErrCode = "INVALID_EMAIL_FORMAT"
	ErrInvalidPayload     ErrCode = "INVALID_PAYLOAD"

	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrUnauthenticated    ErrCode = "UNAUTHENTICATED"
	ErrLogoutFailed       ErrCode = "LOGOUT_FAILED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden ErrCode = "FORBIDDEN"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrFieldsRequired:
		return "Email dan password harus diisi"
	case ErrInvalidEmailFormat:
		return "Format email tidak valid"
	case ErrInvalidPayload:
		return "Payload permintaan tidak valid"

	case ErrInvalidCredentials:
		return "Email atau password salah"
	case ErrUnauthenticated:
		return "Login diperlukan"
	case ErrLogoutFailed:
		return "Gagal logout"

	case ErrForbidden:
		return "Akses ditolak"

	case ErrNotFound:
		return "Sumber daya tidak ditemukan"

	case ErrRateLimitExceeded:
		return "Terlalu banyak permintaan. Silakan coba lagi nanti."

	case ErrInternal:
		return "Terjadi kesalahan server"
	default:
		return "Terjadi kesalahan yang tidak terduga"
	}
}
