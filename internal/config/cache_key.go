package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// RevokedSessionKey returns the cache key marking a logged-out session token.
func (r *CacheKeyStruct) RevokedSessionKey(tokenID string) string {
	return fmt.Sprintf("session:%s:revoked", tokenID)
}

var CacheKey = NewCacheKeyStruct()
