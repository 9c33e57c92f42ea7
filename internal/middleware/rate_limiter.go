package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ==================== IPRateLimiter 按 IP 限流 ====================

// IPRateLimiter 每个客户端 IP 一个令牌桶
// 防止登录、评论、下单等写接口被刷
type IPRateLimiter struct {
	limiters sync.Map // ip -> *limiterEntry
	limit    rate.Limit
	burst    int
}

// limiterEntry 令牌桶条目
type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nano
}

// NewIPRateLimiter 创建限流器
// rps: 每秒补充令牌数，burst: 桶容量
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &IPRateLimiter{
		limit: rate.Limit(rps),
		burst: burst,
	}
}

// Allow 消耗一个令牌，返回是否放行及建议的重试等待时间
func (l *IPRateLimiter) Allow(key string) (bool, time.Duration) {
	actual, _ := l.limiters.LoadOrStore(key, &limiterEntry{
		limiter: rate.NewLimiter(l.limit, l.burst),
	})
	entry := actual.(*limiterEntry)
	entry.lastSeen.Store(time.Now().UnixNano())

	reservation := entry.limiter.Reserve()
	if !reservation.OK() {
		return false, time.Second
	}
	delay := reservation.Delay()
	if delay == 0 {
		return true, 0
	}
	// 不排队等待，归还令牌直接拒绝
	reservation.Cancel()
	return false, delay
}

// Cleanup 清理空闲超过 idle 的条目，返回清理数量
func (l *IPRateLimiter) Cleanup(idle time.Duration) int {
	cutoff := time.Now().Add(-idle).UnixNano()
	removed := 0
	l.limiters.Range(func(key, value interface{}) bool {
		if value.(*limiterEntry).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}

// Size 当前跟踪的 IP 数
func (l *IPRateLimiter) Size() int {
	n := 0
	l.limiters.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

// ==================== Gin 中间件 ====================

// RateLimit 限流中间件，按客户端 IP 区分
//
// 使用示例:
//
//	router.POST("/api/orders", middleware.RateLimit(limiter), ctl.PlaceOrder)
func RateLimit(limiter *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, retryAfter := limiter.Allow(c.ClientIP())
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"code":    429,
				"message": "Too many requests, please retry later",
				"data": gin.H{
					"retry_after": seconds,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
