package models

// Card 导航卡片，MenuID 与 SubMenuID 有且仅有一个非空
type Card struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	MenuID         *uint   `json:"menu_id"`
	SubMenuID      *uint   `json:"sub_menu_id"`
	Title          string  `json:"title" gorm:"not null"`
	URL            string  `json:"url" gorm:"column:url;not null"`
	LogoURL        string  `json:"logo_url" gorm:"column:logo_url"`
	CustomLogoPath *string `json:"custom_logo_path"`
	Desc           string  `json:"desc" gorm:"column:desc"`
	Order          int     `json:"order" gorm:"column:order"`
}

// TableName 设置表名
func (Card) TableName() string {
	return "cards"
}
