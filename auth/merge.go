package auth

import (
	"time"

	"github.com/Narinder098/Gym-project/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mergeLocalCart folds a browser-side cart into the user's server cart
// inside one transaction. Quantities sum on collision; entries referencing
// unknown products are skipped rather than failing the login.
// Returns whether anything was merged.
func mergeLocalCart(db *gorm.DB, userID string, items []LocalCartItem) (bool, error) {
	merged := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart
		if err := tx.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
			return err
		}

		for _, item := range items {
			var count int64
			if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				continue
			}

			upsert := models.CartItem{
				CartID:    cart.CartID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				AddedAt:   time.Now(),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"quantity": gorm.Expr("cart_items.quantity + excluded.quantity"),
					"added_at": time.Now(),
				}),
			}).Create(&upsert).Error; err != nil {
				return err
			}
			merged = true
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return merged, nil
}
