package constants

// Redis key formats
const (
	// Users
	KeyUserOTP = "user:otp:%s" // Format: user:otp:{email}

	// Rate Limiting
	KeyRateLimitIP   = "rate:ip"   // Prefix, expands to rate:ip:{route}:{ip}
	KeyRateLimitUser = "rate:user" // Prefix, expands to rate:user:{route}:{user_id}
)
