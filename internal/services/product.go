package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/RCnetmiles/Lab-Label/internal/models"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductStore is the read/write contract the game logic depends on.
// The catalog is seeded once and read-only afterwards.
type ProductStore interface {
	ListRandom(n int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(p *models.Product) error
}

type ProductService struct {
	db    *gorm.DB
	cache *gocache.Cache
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		db:    db,
		cache: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *ProductService) ListRandom(n int) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Order("RANDOM()").Limit(n).Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	if cached, ok := s.cache.Get(key); ok {
		p := cached.(models.Product)
		return &p, nil
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.cache.Set(key, product, gocache.NoExpiration)
	return &product, nil
}

func (s *ProductService) Create(p *models.Product) error {
	return s.db.Create(p).Error
}
