package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulsewear/storefront/internal/models"
)

func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *GormRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Preload("Addresses").Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) GetClient(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ? AND role = ?", id, models.RoleClient).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) AddAddress(ctx context.Context, addr *models.Address) error {
	return r.DB.WithContext(ctx).Create(addr).Error
}

func (r *GormRepo) GetAddress(ctx context.Context, userID, addressID uuid.UUID) (*models.Address, error) {
	var addr models.Address
	if err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", addressID, userID).First(&addr).Error; err != nil {
		return nil, err
	}
	return &addr, nil
}

type ClientSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Status      string    `json:"status"`
	TotalOrders int64     `json:"total_orders"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *GormRepo) ListClients(ctx context.Context) ([]ClientSummary, error) {
	var out []ClientSummary
	err := r.DB.WithContext(ctx).Model(&models.User{}).
		Select("users.id, users.name, users.email, users.status, users.created_at, COUNT(orders.id) AS total_orders").
		Joins("LEFT JOIN orders ON orders.client_id = users.id").
		Where("users.role = ?", models.RoleClient).
		Group("users.id, users.name, users.email, users.status, users.created_at").
		Scan(&out).Error
	return out, err
}

func (r *GormRepo) SetUserStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND role = ?", id, models.RoleClient).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
