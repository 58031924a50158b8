package database

import (
	"errors"
	"time"

	"navsite/models"

	"gorm.io/gorm"
)

const orderByDisplay = `"order" ASC, id ASC`

func byDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order(orderByDisplay)
}

// MenuTree 按显示顺序返回菜单树：菜单 -> 子菜单 -> 卡片，菜单下的直属卡片挂在 Cards
func (s *Store) MenuTree() ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.
		Preload("Cards", byDisplayOrder).
		Preload("SubMenus", byDisplayOrder).
		Preload("SubMenus.Cards", byDisplayOrder).
		Order(orderByDisplay).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

// ListAds 广告列表，position 为空时返回全部
func (s *Store) ListAds(position string) ([]models.Ad, error) {
	var ads []models.Ad
	query := s.db.Order("id ASC")
	if position != "" {
		query = query.Where("position = ?", position)
	}
	if err := query.Find(&ads).Error; err != nil {
		return nil, err
	}
	return ads, nil
}

// ListFriends 友情链接列表
func (s *Store) ListFriends() ([]models.Friend, error) {
	var friends []models.Friend
	if err := s.db.Order("id ASC").Find(&friends).Error; err != nil {
		return nil, err
	}
	return friends, nil
}

// FindUserByUsername 按用户名查找用户
func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID 按 ID 查找用户
func (s *Store) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RecordLogin 记录最近一次登录时间和 IP
func (s *Store) RecordLogin(userID uint, ip string, at time.Time) error {
	result := s.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"last_login_time": models.FormatLoginTime(at),
		"last_login_ip":   ip,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMenu 删除菜单，其子菜单和卡片由外键级联删除
func (s *Store) DeleteMenu(id uint) error {
	result := s.db.Delete(&models.Menu{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
