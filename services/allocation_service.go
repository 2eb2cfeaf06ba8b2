package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"ecommerce-backend/models"
	"ecommerce-backend/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// StockLedger is the central warehouse counter the allocation flow reads and
// decrements.
type StockLedger interface {
	AllocationView(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	DecrementQuantity(ctx context.Context, id primitive.ObjectID, amount int) (int, error)
}

// BranchAllocationStore upserts per-(branch, product) allocations.
type BranchAllocationStore interface {
	UpsertAllocation(ctx context.Context, branchID, productID primitive.ObjectID, delta int) (int, error)
}

// NotificationSink receives low-stock alerts. Writes are best-effort: a
// failed alert never fails the allocation.
type NotificationSink interface {
	Create(ctx context.Context, n *models.Notification) error
}

// Allocator pushes central stock out to branches.
type Allocator interface {
	AllocateToBranches(ctx context.Context, entries []models.AssignToBranchEntry) *ServiceError
}

// AllocationService validates a batch of branch-quantity requests against
// central stock, applies them, and raises a low-stock alert when the
// post-allocation quantity crosses the threshold.
type AllocationService struct {
	ledger StockLedger
	store  BranchAllocationStore
	sink   NotificationSink
	logger *zap.Logger
}

// NewAllocationService creates an AllocationService.
func NewAllocationService(ledger StockLedger, store BranchAllocationStore, sink NotificationSink, logger *zap.Logger) *AllocationService {
	return &AllocationService{ledger: ledger, store: store, sink: sink, logger: logger}
}

// AllocateToBranches applies a non-empty batch of {branchId, quantityToAdd}
// entries for a single product. Every entry must carry the same productId.
//
// Validation happens before any write. The sufficiency check runs against the
// pre-mutation stock snapshot; the final decrement re-checks the quantity
// conditionally, so concurrent allocations cannot jointly overdraw the
// ledger. Entries are applied in the order supplied; duplicate branch ids
// each increment independently.
func (s *AllocationService) AllocateToBranches(ctx context.Context, entries []models.AssignToBranchEntry) *ServiceError {
	if len(entries) == 0 {
		return NewServiceError(http.StatusBadRequest, "Request body must be a non-empty array.")
	}

	productID, err := primitive.ObjectIDFromHex(entries[0].ProductID)
	if err != nil {
		return NewServiceError(http.StatusBadRequest, "Invalid or missing productId.")
	}

	totalRequested := 0
	branchIDs := make([]primitive.ObjectID, len(entries))
	for i, entry := range entries {
		if entry.ProductID != entries[0].ProductID {
			return NewServiceError(http.StatusBadRequest, "All entries must reference the same productId.")
		}
		if entry.QuantityToAdd <= 0 || entry.BranchID == "" {
			return NewServiceError(http.StatusBadRequest, "Each entry must have a positive quantityToAdd and a branchId.")
		}
		branchID, err := primitive.ObjectIDFromHex(entry.BranchID)
		if err != nil {
			return NewServiceError(http.StatusBadRequest, fmt.Sprintf("Invalid branch ID in entry %d.", i))
		}
		branchIDs[i] = branchID
		totalRequested += entry.QuantityToAdd
	}

	product, err := s.ledger.AllocationView(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewServiceError(http.StatusNotFound, "Product not found.")
		}
		s.logger.Error("Failed to load product for allocation", zap.String("product_id", productID.Hex()), zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Failed to load product.")
	}

	// Pre-mutation snapshot check. Nothing has been written yet, so an
	// insufficient total leaves every document untouched.
	if product.AvailableProductQuantity < totalRequested {
		return NewServiceError(http.StatusBadRequest, InsufficientStockMessage(product.AvailableProductQuantity))
	}

	for i, entry := range entries {
		newQty, err := s.store.UpsertAllocation(ctx, branchIDs[i], productID, entry.QuantityToAdd)
		if err != nil {
			// Earlier upserts in this batch have already landed; the
			// central ledger has not been decremented yet.
			s.logger.Error("Branch allocation upsert failed mid-batch",
				zap.String("product_id", productID.Hex()),
				zap.String("branch_id", entry.BranchID),
				zap.Int("entry", i),
				zap.Error(err))
			return NewServiceError(http.StatusInternalServerError, "Failed to update branch inventory.")
		}
		s.logger.Debug("Branch allocation updated",
			zap.String("branch_id", entry.BranchID),
			zap.Int("quantity", newQty))
	}

	newQuantity, err := s.ledger.DecrementQuantity(ctx, productID, totalRequested)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientStock) {
			// A concurrent allocation drained the stock between the
			// snapshot check and the decrement.
			available := 0
			if view, viewErr := s.ledger.AllocationView(ctx, productID); viewErr == nil {
				available = view.AvailableProductQuantity
			}
			return NewServiceError(http.StatusBadRequest, InsufficientStockMessage(available))
		}
		s.logger.Error("Central stock decrement failed after branch upserts",
			zap.String("product_id", productID.Hex()),
			zap.Int("total_requested", totalRequested),
			zap.Error(err))
		return NewServiceError(http.StatusInternalServerError, "Failed to update product stock.")
	}

	if newQuantity < models.LowStockThreshold {
		s.notifyLowStock(ctx, product.ProductName, newQuantity)
	}

	s.logger.Info("Stock allocated to branches",
		zap.String("product_id", productID.Hex()),
		zap.Int("branches", len(entries)),
		zap.Int("total_allocated", totalRequested),
		zap.Int("remaining", newQuantity))
	return nil
}

// notifyLowStock writes a low-stock alert. Failures are logged and swallowed;
// the allocation has already succeeded.
func (s *AllocationService) notifyLowStock(ctx context.Context, productName string, remaining int) {
	n := &models.Notification{
		Title:   "Low Stock Alert",
		Message: fmt.Sprintf("Product %s stock is low. Only %d unit(s) left.", productName, remaining),
	}
	if err := s.sink.Create(ctx, n); err != nil {
		s.logger.Warn("Failed to write low-stock notification",
			zap.String("product", productName),
			zap.Int("remaining", remaining),
			zap.Error(err))
	}
}
