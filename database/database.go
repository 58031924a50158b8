package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"navsite/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// ErrNotFound 记录不存在
var ErrNotFound = errors.New("记录不存在")

// driverName modernc.org/sqlite 注册的驱动名（纯 Go，无需 cgo）
const driverName = "sqlite"

// Store 导航站数据存储，持有唯一的数据库连接，由 main 创建后传给各处理器
type Store struct {
	db *gorm.DB
}

// Open 打开（必要时创建）SQLite 数据库文件
func Open(cfg config.DatabaseConfig, mode string) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建数据库目录失败: %w", err)
	}

	logLevel := logger.Warn
	if mode == "debug" {
		logLevel = logger.Info
	}

	// 每个连接都开启外键约束，级联删除依赖它
	dsn := filepath.Join(cfg.Dir, cfg.File) + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DriverName: driverName,
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// SQLite 单文件，进程内只保留一个连接，语句按顺序执行
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &Store{db: db}, nil
}

// New 使用已有的 gorm 连接构造 Store（测试中配合 sqlmock 使用）
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB 返回底层 gorm 连接
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Bootstrap 启动时执行一次：建表、补列、按需写入默认数据
// 只有建表失败会返回错误，其余步骤失败仅记录日志
func (s *Store) Bootstrap(admin config.AdminConfig) error {
	if err := s.InitializeSchema(); err != nil {
		return err
	}
	s.MigrateUserColumns()

	if _, err := s.SeedMenusIfEmpty(DefaultMenus, DefaultSubMenus, DefaultCards); err != nil {
		log.Printf("初始化默认菜单失败: %v", err)
	}
	if _, err := s.SeedAdminUserIfEmpty(admin.Username, admin.Password); err != nil {
		log.Printf("初始化管理员账号失败: %v", err)
	}
	if _, err := s.SeedFriendsIfEmpty(DefaultFriends); err != nil {
		log.Printf("初始化友情链接失败: %v", err)
	}

	log.Println("数据库初始化成功")
	return nil
}
