package utils

import (
	"sync"
	"time"
)

// DefaultCacheTTL 授权流程的 state 缓存时长
const DefaultCacheTTL = 10 * time.Minute

// 使用 sync.Map 保证并发安全
var (
	memoryCache sync.Map
)

// cacheItem 内部结构，包含值和过期时间
type cacheItem struct {
	value      string
	expiration time.Time
}

// SetCache 设置缓存，默认 10 分钟过期
// key: state
// value: PKCE verifier
func SetCache(key string, value string) {
	SetCacheWithTTL(key, value, DefaultCacheTTL)
}

// SetCacheWithTTL 设置缓存并指定过期时间
func SetCacheWithTTL(key string, value string, ttl time.Duration) {
	memoryCache.Store(key, cacheItem{
		value:      value,
		expiration: time.Now().Add(ttl),
	})
}

// PopCache 取出并删除 (用完即焚)，同一个 state 只能被消费一次
func PopCache(key string) (string, bool) {
	val, ok := memoryCache.LoadAndDelete(key)
	if !ok {
		return "", false
	}

	item := val.(cacheItem)
	if time.Now().After(item.expiration) {
		return "", false
	}
	return item.value, true
}

// PruneExpiredCache 清理已过期的条目 (用户发起登录后未回调)，返回清理数量
func PruneExpiredCache() int {
	now := time.Now()
	removed := 0
	memoryCache.Range(func(key, val any) bool {
		if item, ok := val.(cacheItem); ok && now.After(item.expiration) {
			memoryCache.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
