package models

// Friend 友情链接
type Friend struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" gorm:"not null"`
	URL   string `json:"url" gorm:"column:url;not null"`
	Logo  string `json:"logo"`
}

// TableName 设置表名
func (Friend) TableName() string {
	return "friends"
}
