package postgres

import (
	"context"

	"vitashop/internal/domain/entity"
	domainerrors "vitashop/internal/domain/errors"
	"vitashop/internal/domain/repository"
	"vitashop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// openCartPredicate matches the predicate of ux_orders_user_cart. It must stay a literal
// so PostgreSQL can infer the partial index as the conflict target.
const openCartPredicate = "order_status = 1"

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// onPrimary routes a statement, including its preload queries, to the primary database.
func onPrimary(db *gorm.DB) *gorm.DB {
	return db.Clauses(dbresolver.Write)
}

// FindOpenCartWithItems retrieves the user's open cart with its line items, their variants and products.
func (repo *cartRepository) FindOpenCartWithItems(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Scopes(onPrimary).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return onPrimary(db).Order("created_at ASC")
		}).
		Preload("Items.ProductStock", onPrimary).
		Preload("Items.ProductStock.Product", onPrimary).
		Preload("Items.ProductStock.Product.Category", onPrimary).
		Preload("Items.ProductStock.Product.Category.Menu", onPrimary).
		Preload("Items.ProductStock.Product.Images", onPrimary).
		Where("user_id = ? AND order_status = ?", userID, int(entity.OrderStatusCart)).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cart")
	}

	return toOrderDomain(&orderM), nil
}

// LockOpenCart retrieves the user's open cart and locks its row until the transaction ends.
func (repo *cartRepository) LockOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND order_status = ?", userID, int(entity.OrderStatusCart)).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to lock open cart")
	}

	return toOrderDomain(&orderM), nil
}

// LockOrCreateOpenCart inserts an open cart for the user unless one exists, then locks and returns it.
func (repo *cartRepository) LockOrCreateOpenCart(
	ctx context.Context,
	userID uuid.UUID,
	orderNumber string,
) (*entity.Order, bool, error) {
	orderM := &model.OrderModel{
		UserID:      userID,
		OrderNumber: orderNumber,
		OrderStatus: int(entity.OrderStatusCart),
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:     []clause.Column{{Name: "user_id"}},
			TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: openCartPredicate}}},
			DoNothing:   true,
		}).
		Create(orderM)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) || isNotNullConstraintViolation(result.Error) {
			return nil, false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to create cart")
		}

		return nil, false, errors.Wrap(result.Error, "failed to create cart")
	}

	order, err := repo.LockOpenCart(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	return order, result.RowsAffected == 1, nil
}

// UpdateCosts persists the order's subtotal, shipping and total costs.
func (repo *cartRepository) UpdateCosts(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"sub_total_cost": order.SubTotalCost,
			"shipping_cost":  order.ShippingCost,
			"total_cost":     order.TotalCost,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "order costs rejected")
		}

		return errors.Wrap(result.Error, "failed to update order costs")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// DeleteOrder removes an order by its ID.
func (repo *cartRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// FindItem retrieves the line item for a variant within an order.
func (repo *cartRepository) FindItem(ctx context.Context, orderID, productStockID uuid.UUID) (*entity.OrderProductStock, error) {
	var itemM model.OrderProductStockModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ? AND product_stock_id = ?", orderID, productStockID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return toOrderItemDomain(&itemM), nil
}

// UpsertItem inserts the line item or, if the variant is already in the order, overwrites its quantity.
func (repo *cartRepository) UpsertItem(ctx context.Context, item *entity.OrderProductStock) error {
	itemM := fromOrderItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}, {Name: "product_stock_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductStockNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "cart item quantity rejected")
		}

		return errors.Wrap(err, "failed to upsert cart item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// UpdateItem points a line item at a variant and sets its quantity.
func (repo *cartRepository) UpdateItem(ctx context.Context, itemID, productStockID uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderProductStockModel{}).
		Where("id = ?", itemID).
		Updates(map[string]any{
			"product_stock_id": productStockID,
			"quantity":         quantity,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "variant already in cart")
		}

		return errors.Wrap(result.Error, "failed to update cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// DeleteItem removes a line item by its ID.
func (repo *cartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", itemID).
		Delete(&model.OrderProductStockModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// CountItems returns the number of line items in an order.
func (repo *cartRepository) CountItems(ctx context.Context, orderID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderProductStockModel{}).
		Where("order_id = ?", orderID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count cart items")
	}

	return count, nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel, with any loaded line items, to a domain Order.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:           data.ID,
		UserID:       data.UserID,
		OrderNumber:  data.OrderNumber,
		Status:       entity.OrderStatus(data.OrderStatus),
		SubTotalCost: data.SubTotalCost,
		ShippingCost: data.ShippingCost,
		TotalCost:    data.TotalCost,
		Items:        make([]entity.OrderProductStock, 0, len(data.Items)),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	for i := range data.Items {
		order.Items = append(order.Items, *toOrderItemDomain(&data.Items[i]))
	}

	return order
}

// toOrderItemDomain converts a GORM OrderProductStockModel to a domain OrderProductStock.
func toOrderItemDomain(data *model.OrderProductStockModel) *entity.OrderProductStock {
	if data == nil {
		return nil
	}

	return &entity.OrderProductStock{
		ID:             data.ID,
		OrderID:        data.OrderID,
		ProductStockID: data.ProductStockID,
		ProductStock:   toProductStockDomain(data.ProductStock),
		Quantity:       data.Quantity,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromOrderItemDomain converts a domain OrderProductStock to a GORM OrderProductStockModel.
func fromOrderItemDomain(data *entity.OrderProductStock) *model.OrderProductStockModel {
	if data == nil {
		return nil
	}

	return &model.OrderProductStockModel{
		ID:             data.ID,
		OrderID:        data.OrderID,
		ProductStockID: data.ProductStockID,
		Quantity:       data.Quantity,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
