package sqlite

// Product is the gorm model of the products table.
type Product struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	ExtID       string  `gorm:"column:ext_id;not null"`
	Name        string  `gorm:"not null"`
	Description *string `gorm:"type:text"`
}

func (Product) TableName() string {
	return "products"
}
