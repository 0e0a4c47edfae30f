package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AccessTokenTTL is the lifetime of a signed access token.
const AccessTokenTTL = time.Hour

// RefreshTokenTTL is the lifetime of a signed refresh token.
const RefreshTokenTTL = 30 * 24 * time.Hour
