package database

import (
	"fmt"
	"log"

	"navsite/models"
)

// schemaStatements 建表与索引语句，全部幂等
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS menus (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		"order" INTEGER DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_menus_order ON menus("order")`,

	`CREATE TABLE IF NOT EXISTS sub_menus (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		parent_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		"order" INTEGER DEFAULT 0,
		FOREIGN KEY(parent_id) REFERENCES menus(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_menus_parent_id ON sub_menus(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sub_menus_order ON sub_menus("order")`,

	// 卡片要么挂在一级菜单下，要么挂在子菜单下
	`CREATE TABLE IF NOT EXISTS cards (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		menu_id INTEGER,
		sub_menu_id INTEGER,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		logo_url TEXT,
		custom_logo_path TEXT,
		"desc" TEXT,
		"order" INTEGER DEFAULT 0,
		FOREIGN KEY(menu_id) REFERENCES menus(id) ON DELETE CASCADE,
		FOREIGN KEY(sub_menu_id) REFERENCES sub_menus(id) ON DELETE CASCADE,
		CHECK ((menu_id IS NULL) <> (sub_menu_id IS NULL))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_menu_id ON cards(menu_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_sub_menu_id ON cards(sub_menu_id)`,
	`CREATE INDEX IF NOT EXISTS idx_cards_order ON cards("order")`,

	// last_login_time / last_login_ip 由 MigrateUserColumns 追加
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)`,

	`CREATE TABLE IF NOT EXISTS ads (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		position TEXT NOT NULL,
		img TEXT NOT NULL,
		url TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ads_position ON ads(position)`,

	`CREATE TABLE IF NOT EXISTS friends (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		url TEXT NOT NULL,
		logo TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_friends_title ON friends(title)`,
}

// InitializeSchema 创建全部数据表和索引，每次启动调用都是安全的
func (s *Store) InitializeSchema() error {
	for _, stmt := range schemaStatements {
		if err := s.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("创建数据表失败: %w", err)
		}
	}
	return nil
}

// userLoginColumns 用户表后加的列（模型字段名）
var userLoginColumns = []string{"LastLoginTime", "LastLoginIP"}

// MigrateUserColumns 为用户表补充登录记录列，先查元数据，已存在则跳过
func (s *Store) MigrateUserColumns() {
	migrator := s.db.Migrator()
	for _, field := range userLoginColumns {
		if migrator.HasColumn(&models.User{}, field) {
			continue
		}
		if err := migrator.AddColumn(&models.User{}, field); err != nil {
			log.Printf("用户表添加列 %s 失败: %v", field, err)
			continue
		}
		log.Printf("用户表已添加列: %s", field)
	}
}
