package middleware

import (
	"context"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ==================== 审计操作人 ====================

// AuditActor 当前操作人 ID，取 SessionAuth 写入的当前用户
// CLI 与定时任务没有登录用户，返回 0 表示不填充
func AuditActor(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if user := CurrentUserFromContext(ctx); user != nil {
		return user.ID
	}
	return 0
}

// ==================== GORM 回调 ====================

// RegisterAuditCallbacks 注册 GORM 审计回调，仅对嵌入 model.AuditMixin 的模型生效
// 创建时填充空的 CreatedBy / UpdatedBy，更新时覆盖 UpdatedBy
func RegisterAuditCallbacks(db *gorm.DB) error {
	err := db.Callback().Create().Before("gorm:create").Register("audit:create", func(tx *gorm.DB) {
		actor := AuditActor(tx.Statement.Context)
		if actor == 0 || tx.Statement.Schema == nil {
			return
		}
		for _, name := range []string{"CreatedBy", "UpdatedBy"} {
			if field := tx.Statement.Schema.LookUpField(name); field != nil {
				fillIfZero(tx, field, actor)
			}
		}
	})
	if err != nil {
		return err
	}

	return db.Callback().Update().Before("gorm:update").Register("audit:update", func(tx *gorm.DB) {
		actor := AuditActor(tx.Statement.Context)
		if actor == 0 || tx.Statement.Schema == nil {
			return
		}
		if field := tx.Statement.Schema.LookUpField("UpdatedBy"); field != nil {
			tx.Statement.SetColumn(field.DBName, actor, true)
		}
	})
}

// fillIfZero 单条或批量插入时，只填充未赋值的字段
func fillIfZero(tx *gorm.DB, field *schema.Field, actor int64) {
	ctx := tx.Statement.Context
	rv := tx.Statement.ReflectValue

	switch rv.Kind() {
	case reflect.Struct:
		if _, zero := field.ValueOf(ctx, rv); zero {
			_ = field.Set(ctx, rv, actor)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := reflect.Indirect(rv.Index(i))
			if _, zero := field.ValueOf(ctx, elem); zero {
				_ = field.Set(ctx, elem, actor)
			}
		}
	}
}
