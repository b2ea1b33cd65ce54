package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/fitdetector-backend/internal/apierr"
	"github.com/yungbote/fitdetector-backend/internal/logger"
	"github.com/yungbote/fitdetector-backend/internal/repos"
	"github.com/yungbote/fitdetector-backend/internal/types"
)

type ClothingService interface {
	Create(ctx context.Context, userID, outfitID uuid.UUID, clothingType, brand string, price *float64, link string) (*types.Clothing, error)
}

type clothingService struct {
	db           *gorm.DB
	log          *logger.Logger
	clothingRepo repos.ClothingRepo
	outfitRepo   repos.OutfitRepo
}

func NewClothingService(db *gorm.DB, log *logger.Logger, clothingRepo repos.ClothingRepo, outfitRepo repos.OutfitRepo) ClothingService {
	serviceLog := log.With("service", "ClothingService")
	return &clothingService{
		db:           db,
		log:          serviceLog,
		clothingRepo: clothingRepo,
		outfitRepo:   outfitRepo,
	}
}

func (cls *clothingService) Create(ctx context.Context, userID, outfitID uuid.UUID, clothingType, brand string, price *float64, link string) (*types.Clothing, error) {
	if userID == uuid.Nil {
		return nil, apierr.Unauthorized(fmt.Errorf("adding clothing requires an authenticated user"))
	}
	clothingType = strings.TrimSpace(clothingType)
	brand = strings.TrimSpace(brand)
	link = strings.TrimSpace(link)
	if clothingType == "" || brand == "" || link == "" {
		return nil, apierr.InvalidInput(fmt.Errorf("type, brand and link are required"))
	}
	if price != nil && *price < 0 {
		return nil, apierr.InvalidInput(fmt.Errorf("price must not be negative"))
	}

	clothing := &types.Clothing{
		ID:       uuid.New(),
		OutfitID: outfitID,
		UserID:   userID,
		Type:     clothingType,
		Brand:    brand,
		Price:    price,
		Link:     link,
	}

	if err := cls.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := cls.outfitRepo.GetByID(ctx, tx, outfitID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apierr.NotFound(fmt.Errorf("outfit %s does not exist", outfitID))
			}
			return fmt.Errorf("failed to load outfit: %w", err)
		}
		if err := cls.clothingRepo.Create(ctx, tx, clothing); err != nil {
			return fmt.Errorf("failed to create clothing: %w", err)
		}
		return nil
	}); err != nil {
		cls.log.Warn("Create clothing failed", "outfit_id", outfitID, "error", err)
		return nil, err
	}
	return clothing, nil
}
