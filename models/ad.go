package models

const (
	AdPositionLeft  = "left"
	AdPositionRight = "right"
)

// Ad 广告位
type Ad struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Position string `json:"position" gorm:"not null"` // left/right
	Img      string `json:"img" gorm:"not null"`
	URL      string `json:"url" gorm:"column:url;not null"`
}

// TableName 设置表名
func (Ad) TableName() string {
	return "ads"
}

// IsValidAdPosition 广告位置只允许 left/right
func IsValidAdPosition(position string) bool {
	return position == AdPositionLeft || position == AdPositionRight
}
