package service

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/ws"

	"github.com/google/uuid"
)

type InventoryService interface {
	List(lowStockOnly bool) ([]model.InventoryDetail, error)
	Get(id uuid.UUID) (*model.InventoryDetail, error)
	Create(req *CreateInventoryRequest) (*model.InventoryItem, error)
	Update(id uuid.UUID, req *UpdateInventoryRequest) (*model.InventoryItem, error)
	Delete(id uuid.UUID) error
	// UpdateQuantity sets the absolute stock level and appends the matching
	// ledger entry. A zero delta refreshes timestamps without a ledger write.
	UpdateQuantity(id uuid.UUID, newQuantity int, reason string, userID uuid.UUID) (*model.InventoryItem, error)
	LowStockItems() ([]model.InventoryDetail, error)
	InventoryValue() (float64, error)
	Transactions(id uuid.UUID) ([]model.StockTransaction, error)
}

type CreateInventoryRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"gte=0"`
	Location  string    `json:"location" validate:"required"`
}

type UpdateInventoryRequest struct {
	Location *string `json:"location" validate:"omitempty,min=1"`
}

type UpdateStockRequest struct {
	Quantity *int   `json:"quantity" validate:"required,gte=0"`
	Reason   string `json:"reason" validate:"required"`
}

type inventoryService struct {
	invRepo     repository.InventoryRepository
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
	hub         *ws.Hub
}

func NewInventoryService(
	invRepo repository.InventoryRepository,
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		invRepo:     invRepo,
		txRepo:      txRepo,
		productRepo: productRepo,
		hub:         hub,
	}
}

func (s *inventoryService) List(lowStockOnly bool) ([]model.InventoryDetail, error) {
	items, err := s.invRepo.FindAll()
	if err != nil {
		return nil, err
	}

	details := make([]model.InventoryDetail, 0, len(items))
	for _, item := range items {
		detail := s.enrich(&item)
		if lowStockOnly && (detail.Product == nil || detail.Quantity > detail.Product.MinStock) {
			continue
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *inventoryService) Get(id uuid.UUID) (*model.InventoryDetail, error) {
	item, err := s.invRepo.FindByID(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}
	return s.enrich(item), nil
}

func (s *inventoryService) Create(req *CreateInventoryRequest) (*model.InventoryItem, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		return nil, ErrProductNotFound
	}
	// At most one live inventory item per product.
	if existing, _ := s.invRepo.FindByProductID(req.ProductID); existing != nil {
		return nil, ErrInventoryExists
	}

	item := &model.InventoryItem{
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Location:    req.Location,
		LastUpdated: time.Now(),
	}
	if err := s.invRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Update(id uuid.UUID, req *UpdateInventoryRequest) (*model.InventoryItem, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	item, err := s.invRepo.FindByID(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	if req.Location != nil {
		item.Location = *req.Location
	}

	if err := s.invRepo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Delete(id uuid.UUID) error {
	if _, err := s.invRepo.FindByID(id); err != nil {
		return ErrInventoryNotFound
	}
	return s.invRepo.Delete(id)
}

func (s *inventoryService) UpdateQuantity(id uuid.UUID, newQuantity int, reason string, userID uuid.UUID) (*model.InventoryItem, error) {
	item, err := s.invRepo.FindByID(id)
	if err != nil {
		return nil, ErrInventoryNotFound
	}

	oldQuantity := item.Quantity
	delta := newQuantity - oldQuantity

	item.Quantity = newQuantity
	item.LastUpdated = time.Now()

	// Zero-delta updates touch the item but write no ledger entry.
	var entry *model.StockTransaction
	if delta != 0 {
		txType := model.TxOut
		if delta > 0 {
			txType = model.TxIn
		}
		quantity := delta
		if quantity < 0 {
			quantity = -quantity
		}
		entry = &model.StockTransaction{
			InventoryID: item.ID,
			Type:        txType,
			Quantity:    quantity,
			Reason:      reason,
			UserID:      userID,
		}
	}

	if err := s.invRepo.SetQuantity(item, entry); err != nil {
		return nil, err
	}

	if s.hub != nil && delta != 0 {
		go s.hub.BroadcastJSON(map[string]interface{}{
			"type":        "stock_update",
			"inventoryId": item.ID,
			"productId":   item.ProductID,
			"oldQuantity": oldQuantity,
			"newQuantity": newQuantity,
			"reason":      reason,
			"userId":      userID,
		})
	}

	return item, nil
}

// LowStockItems returns the items at or below their product's minimum stock
// threshold. The product is the single source of truth for thresholds.
func (s *inventoryService) LowStockItems() ([]model.InventoryDetail, error) {
	return s.List(true)
}

// InventoryValue sums quantity * product cost; items whose product cannot be
// resolved contribute 0.
func (s *inventoryService) InventoryValue() (float64, error) {
	items, err := s.invRepo.FindAll()
	if err != nil {
		return 0, err
	}

	var total float64
	for _, item := range items {
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		total += float64(item.Quantity) * product.Cost
	}
	return total, nil
}

func (s *inventoryService) Transactions(id uuid.UUID) ([]model.StockTransaction, error) {
	if _, err := s.invRepo.FindByID(id); err != nil {
		return nil, ErrInventoryNotFound
	}
	return s.txRepo.FindByInventoryID(id)
}

func (s *inventoryService) enrich(item *model.InventoryItem) *model.InventoryDetail {
	detail := &model.InventoryDetail{InventoryItem: *item}
	if product, err := s.productRepo.FindByID(item.ProductID); err == nil {
		detail.Product = product.ToRef()
	}
	return detail
}
