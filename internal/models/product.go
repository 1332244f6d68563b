package models

type Product struct {
	Base
	Title     string  `gorm:"not null" json:"title"`
	Price     float64 `gorm:"not null;check:chk_products_price,price >= 0" json:"price"`
	ImageURL  *string `json:"image_url"`
	ImageFile *string `json:"image_file"`
}

func (Product) TableName() string {
	return "products"
}
