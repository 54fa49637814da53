package constant

const (
	// RoleUser is assigned to every account at registration.
	RoleUser = "USER"

	// DefaultTokenExpiryMs bounds token lifetime when JWT_EXPIRY_MS is unset.
	DefaultTokenExpiryMs = 3600000
)
