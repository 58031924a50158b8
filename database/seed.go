package database

import (
	"fmt"
	"log"

	"navsite/models"

	"golang.org/x/crypto/bcrypt"
)

// MenuSeed 默认一级菜单
type MenuSeed struct {
	Name  string
	Order int
}

// SubMenuSeed 默认子菜单，父菜单用名称表示
type SubMenuSeed struct {
	ParentMenu string
	Name       string
	Order      int
}

// CardSeed 默认卡片，Menu 与 SubMenu 二选一
type CardSeed struct {
	Menu    string
	SubMenu string
	Title   string
	URL     string
	LogoURL string
	Desc    string
}

// FriendSeed 默认友情链接
type FriendSeed struct {
	Title string
	URL   string
	Logo  string
}

// subMenuRef 已写入的子菜单，按写入顺序保存
type subMenuRef struct {
	parent string
	name   string
	id     uint
}

// subMenuIndex 子菜单名称到 ID 的映射，同名时先写入者优先
type subMenuIndex []subMenuRef

// lookup 按名称精确匹配；名称含下划线时与 "父菜单_名称" 后缀匹配的结果可能不同
func (idx subMenuIndex) lookup(name string) (uint, bool) {
	for _, ref := range idx {
		if ref.name == name {
			return ref.id, true
		}
	}
	return 0, false
}

func (s *Store) isEmpty(model interface{}) (bool, error) {
	var count int64
	if err := s.db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}

// SeedMenusIfEmpty 菜单表为空时写入默认菜单，随后写入默认子菜单和卡片
// 子菜单和卡片没有单独判断是否为空，只跟随菜单一起写入
func (s *Store) SeedMenusIfEmpty(menus []MenuSeed, subMenus []SubMenuSeed, cards []CardSeed) (bool, error) {
	empty, err := s.isEmpty(&models.Menu{})
	if err != nil {
		return false, fmt.Errorf("统计菜单数量失败: %w", err)
	}
	if !empty {
		return false, nil
	}

	inserted := 0
	for _, m := range menus {
		menu := models.Menu{Name: m.Name, Order: m.Order}
		if err := s.db.Create(&menu).Error; err != nil {
			log.Printf("插入菜单失败 %s: %v", m.Name, err)
			continue
		}
		inserted++
	}
	log.Printf("菜单插入完成，共 %d 个，开始插入默认子菜单和卡片...", inserted)

	s.seedSubMenusAndCards(subMenus, cards)
	return true, nil
}

// seedSubMenusAndCards 依次执行：读取菜单映射 -> 写入子菜单 -> 写入卡片
func (s *Store) seedSubMenusAndCards(subMenus []SubMenuSeed, cards []CardSeed) {
	menuIDs, err := s.menuIDsByName()
	if err != nil {
		log.Printf("获取菜单失败: %v", err)
		return
	}
	if len(menuIDs) == 0 {
		log.Println("未找到任何菜单")
		return
	}

	subIDs := s.insertSubMenus(menuIDs, subMenus)
	s.insertCards(menuIDs, subIDs, cards)
}

// menuIDsByName 按显示顺序重新读取菜单，生成 名称 -> ID 映射
func (s *Store) menuIDsByName() (map[string]uint, error) {
	var menus []models.Menu
	if err := s.db.Order(`"order" ASC, id ASC`).Find(&menus).Error; err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(menus))
	for _, m := range menus {
		// 同名菜单取第一个
		if _, ok := ids[m.Name]; !ok {
			ids[m.Name] = m.ID
		}
	}
	return ids, nil
}

func (s *Store) insertSubMenus(menuIDs map[string]uint, seeds []SubMenuSeed) subMenuIndex {
	idx := make(subMenuIndex, 0, len(seeds))
	for _, seed := range seeds {
		parentID, ok := menuIDs[seed.ParentMenu]
		if !ok {
			log.Printf("未找到父菜单: %s", seed.ParentMenu)
			continue
		}
		sub := models.SubMenu{ParentID: parentID, Name: seed.Name, Order: seed.Order}
		if err := s.db.Create(&sub).Error; err != nil {
			log.Printf("插入子菜单失败 [%s] %s: %v", seed.ParentMenu, seed.Name, err)
			continue
		}
		idx = append(idx, subMenuRef{parent: seed.ParentMenu, name: seed.Name, id: sub.ID})
	}
	log.Printf("所有子菜单插入完成，总计: %d 个子菜单", len(idx))
	return idx
}

func (s *Store) insertCards(menuIDs map[string]uint, subIDs subMenuIndex, seeds []CardSeed) {
	inserted := 0
	for _, seed := range seeds {
		card := models.Card{
			Title:   seed.Title,
			URL:     seed.URL,
			LogoURL: seed.LogoURL,
			Desc:    seed.Desc,
		}

		target := seed.Menu
		if seed.SubMenu != "" {
			target = seed.SubMenu
			id, ok := subIDs.lookup(seed.SubMenu)
			if !ok {
				log.Printf("未找到子菜单: %s", seed.SubMenu)
				continue
			}
			card.SubMenuID = &id
		} else {
			id, ok := menuIDs[seed.Menu]
			if !ok {
				log.Printf("未找到菜单: %s", seed.Menu)
				continue
			}
			card.MenuID = &id
		}

		if err := s.db.Create(&card).Error; err != nil {
			log.Printf("插入卡片失败 [%s] %s: %v", target, seed.Title, err)
			continue
		}
		inserted++
	}
	log.Printf("所有卡片插入完成，总计: %d 张卡片", inserted)
}

// SeedAdminUserIfEmpty 用户表为空时写入默认管理员，密码以 bcrypt 哈希保存
func (s *Store) SeedAdminUserIfEmpty(username, password string) (bool, error) {
	empty, err := s.isEmpty(&models.User{})
	if err != nil {
		return false, fmt.Errorf("统计用户数量失败: %w", err)
	}
	if !empty {
		return false, nil
	}
	if username == "" {
		return false, fmt.Errorf("未配置默认管理员用户名")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("密码加密失败: %w", err)
	}

	user := models.User{Username: username, Password: string(hash)}
	if err := s.db.Select("Username", "Password").Create(&user).Error; err != nil {
		return false, fmt.Errorf("创建管理员失败: %w", err)
	}
	log.Printf("已创建默认管理员: %s", username)
	return true, nil
}

// SeedFriendsIfEmpty 友情链接表为空时写入默认友情链接
func (s *Store) SeedFriendsIfEmpty(friends []FriendSeed) (bool, error) {
	empty, err := s.isEmpty(&models.Friend{})
	if err != nil {
		return false, fmt.Errorf("统计友情链接数量失败: %w", err)
	}
	if !empty {
		return false, nil
	}

	for _, f := range friends {
		friend := models.Friend{Title: f.Title, URL: f.URL, Logo: f.Logo}
		if err := s.db.Create(&friend).Error; err != nil {
			log.Printf("插入友情链接失败 %s: %v", f.Title, err)
		}
	}
	return true, nil
}
