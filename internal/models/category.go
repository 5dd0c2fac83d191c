package models

// Category represents a content category
type Category struct {
	ID          int64  `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name        string `gorm:"type:varchar(255);not null;column:name" json:"name"`
	Slug        string `gorm:"type:varchar(255);uniqueIndex;not null;column:slug" json:"slug"`
	Description string `gorm:"type:text;column:description" json:"description"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
