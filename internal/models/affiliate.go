package models

// Affiliate represents an affiliate partner whose name doubles as the
// shortcode key embedded in post bodies.
type Affiliate struct {
	ID            int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name          string `gorm:"type:varchar(255);uniqueIndex;not null;column:name" json:"name"`
	BaseURL       string `gorm:"type:varchar(512);not null;column:base_url" json:"base_url"`
	AffiliateCode string `gorm:"type:varchar(255);column:affiliate_code" json:"affiliate_code"`
	Description   string `gorm:"type:text;column:description" json:"description"`
}

// TableName specifies the table name for Affiliate
func (Affiliate) TableName() string {
	return "affiliates"
}
