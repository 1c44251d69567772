package repositories

import (
	"context"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/pkg/utils"
)

type PaymentRepository interface {
	// RecordPayment persists the payment and marks the referenced booking
	// paid inside one database transaction, so the two writes cannot be
	// observed half-applied.
	RecordPayment(ctx context.Context, payment *db_models.Payment) error
	ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (p *paymentRepository) RecordPayment(ctx context.Context, payment *db_models.Payment) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Update first: a missing booking surfaces as zero affected rows
		// here, before the payment insert can trip the FK constraint.
		res := tx.Model(&db_models.Booking{}).
			Where("id = ?", payment.BookingID).
			Updates(map[string]interface{}{
				"paid":           true,
				"transaction_id": payment.TransactionID,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return utils.ErrBookingNotFound
		}

		return tx.Create(payment).Error
	})
}

func (p *paymentRepository) ListByEmail(ctx context.Context, email string) ([]db_models.Payment, error) {
	var payments []db_models.Payment
	err := p.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
