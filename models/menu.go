package models

// Menu 一级菜单（导航分类）
type Menu struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Order int    `json:"order" gorm:"column:order"`

	SubMenus []SubMenu `json:"sub_menus,omitempty" gorm:"foreignKey:ParentID"`
	Cards    []Card    `json:"cards,omitempty" gorm:"foreignKey:MenuID"`
}

// TableName 设置表名
func (Menu) TableName() string {
	return "menus"
}

// SubMenu 二级菜单，删除父菜单时级联删除
type SubMenu struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	ParentID uint   `json:"parent_id" gorm:"not null"`
	Name     string `json:"name" gorm:"not null"`
	Order    int    `json:"order" gorm:"column:order"`

	Cards []Card `json:"cards,omitempty" gorm:"foreignKey:SubMenuID"`
}

// TableName 设置表名
func (SubMenu) TableName() string {
	return "sub_menus"
}
