package service

import (
	"time"

	"ecommerce-backend/internal/models"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,notblank,max=50"`
	Email           string `json:"email" validate:"required,email,max=150"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type UserResponse struct {
	UserUUID  uuid.UUID `json:"user_uuid"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	Verified  bool      `json:"verified"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		UserUUID:  u.UserUUID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		Verified:  u.IsVerified,
		Role:      u.Role(),
		CreatedAt: u.CreatedAt,
	}
}

type AuthResponse struct {
	User         *UserResponse `json:"user"`
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token,omitempty"`
	ExpiresAt    int64         `json:"expires_at"`
}

type CreateProductRequest struct {
	Title     string  `json:"title" validate:"required,notblank,max=255"`
	Price     float64 `json:"price" validate:"gte=0"`
	ImageURL  string  `json:"image_url" validate:"omitempty,url,max=500"`
	ImageFile string  `json:"image_file" validate:"omitempty,max=255"`
	Notes     string  `json:"notes" validate:"max=1000"`
}

type ListProductsRequest struct {
	Offset int    `form:"offset" validate:"gte=0"`
	Limit  int    `form:"limit" validate:"gte=0"`
	Query  string `form:"q" validate:"max=100"`
}

type ProductListResponse struct {
	Items  []models.Product `json:"items"`
	Total  int64            `json:"total"`
	Offset int              `json:"offset"`
	Limit  int              `json:"limit"`
}

type AddToCartRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gte=1,lte=1000"`
}

type CartResponse struct {
	OrderID uint                  `json:"order_id,omitempty"`
	Items   []models.OrderProduct `json:"items"`
	Total   float64               `json:"total"`
}

func newCartResponse(orderID uint, lines []models.OrderProduct) *CartResponse {
	cart := &CartResponse{OrderID: orderID, Items: lines}
	if cart.Items == nil {
		cart.Items = []models.OrderProduct{}
	}
	for i := range cart.Items {
		cart.Total += cart.Items[i].Subtotal()
	}
	return cart
}
