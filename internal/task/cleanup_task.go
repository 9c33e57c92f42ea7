package task

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// 默认每小时整点执行
const DefaultCleanupSpec = "0 0 * * * *"

// 限流器条目闲置超过该时长即回收
const limiterIdleTTL = 30 * time.Minute

// ==================== 依赖接口 ====================

// SessionCleaner 过期会话清理
type SessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// LimiterPruner 回收闲置的限流器条目
type LimiterPruner interface {
	Cleanup(idle time.Duration) int
}

// ==================== CleanupTask ====================

// CleanupTask 定时清理过期会话与闲置限流条目
type CleanupTask struct {
	sessions SessionCleaner
	limiter  LimiterPruner // 可为 nil
	spec     string
	Cron     *cron.Cron
}

// NewCleanupTask 创建清理任务，spec 为空时使用 DefaultCleanupSpec
func NewCleanupTask(sessions SessionCleaner, limiter LimiterPruner, spec string) *CleanupTask {
	if spec == "" {
		spec = DefaultCleanupSpec
	}
	return &CleanupTask{
		sessions: sessions,
		limiter:  limiter,
		spec:     spec,
		Cron:     cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务，启动时先执行一次
func (t *CleanupTask) Start() error {
	// 首次执行
	go func() {
		zap.L().Info("[Task] 服务启动，正在执行首次清理...")
		t.RunOnce()
	}()

	if _, err := t.Cron.AddFunc(t.spec, t.RunOnce); err != nil {
		return err
	}

	t.Cron.Start()
	zap.L().Info("会话清理任务已启动", zap.String("spec", t.spec))
	return nil
}

// Stop 停止调度并等待正在执行的任务结束
func (t *CleanupTask) Stop() {
	<-t.Cron.Stop().Done()
	zap.L().Info("会话清理任务已停止")
}

// RunOnce 执行一轮清理
func (t *CleanupTask) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := t.sessions.CleanupExpiredSessions(ctx)
	if err != nil {
		zap.L().Error("[Cron] 清理过期会话失败", zap.Error(err))
	} else if removed > 0 {
		zap.L().Info("[Cron] 已清理过期会话", zap.Int64("count", removed))
	}

	if t.limiter != nil {
		if n := t.limiter.Cleanup(limiterIdleTTL); n > 0 {
			zap.L().Debug("[Cron] 已回收闲置限流条目", zap.Int("count", n))
		}
	}
}
