package ez

// gin.Context 里约定的 key
const (
	KeyUserID    = "userId"
	KeyRole      = "role"
	KeyClaims    = "claims"
	KeyRequestID = "X-Request-ID"
)
