// Package dbtest 给各包测试提供隔离的内存 sqlite 库
package dbtest

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"paranoid-users/internal/core/database"
	"paranoid-users/internal/feature/user"
)

var seq atomic.Int64

// Open 每次返回一个全新的、已迁移 Users 表的内存库
func Open(t testing.TB) *gorm.DB {
	return OpenWithClock(t, nil)
}

func OpenWithClock(t testing.TB, now func() time.Time) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))
	db, err := database.NewGorm(database.Opts{
		Driver:   "sqlite",
		DSN:      dsn,
		LogLevel: "silent",
		NowFunc:  now,
	})
	require.NoError(t, err)
	require.NoError(t, user.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
