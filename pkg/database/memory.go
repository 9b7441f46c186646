package database

import (
	"fmt"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var memorySeq atomic.Int64

// OpenMemory 打开一个独立的 SQLite 内存库并迁移表结构，供测试和本地调试使用
func OpenMemory(tables []interface{}) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:memdb%d?mode=memory&cache=shared", memorySeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return nil, err
	}
	return db, nil
}
