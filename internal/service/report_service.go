package service

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
)

type ReportService interface {
	Dashboard() (*DashboardReport, error)
	InventorySummary() (*InventorySummaryReport, error)
	LowStock() (*LowStockReport, error)
	Transactions(filter repository.TransactionFilter) (*TransactionsReport, error)
}

type DashboardSummary struct {
	TotalProducts       int     `json:"totalProducts"`
	TotalInventoryItems int     `json:"totalInventoryItems"`
	TotalCategories     int     `json:"totalCategories"`
	TotalSuppliers      int     `json:"totalSuppliers"`
	LowStockCount       int     `json:"lowStockCount"`
	TotalValue          float64 `json:"totalValue"`
}

type CategoryDistribution struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	ProductCount   int       `json:"productCount"`
	InventoryValue float64   `json:"inventoryValue"`
}

type SupplierDistribution struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ProductCount   int       `json:"productCount"`
	InventoryValue float64   `json:"inventoryValue"`
}

type DashboardReport struct {
	Summary              DashboardSummary         `json:"summary"`
	CategoryDistribution []CategoryDistribution   `json:"categoryDistribution"`
	SupplierDistribution []SupplierDistribution   `json:"supplierDistribution"`
	RecentTransactions   []model.StockTransaction `json:"recentTransactions"`
}

type StockStatus string

const (
	StockLow    StockStatus = "low"
	StockNormal StockStatus = "normal"
	StockHigh   StockStatus = "high"
)

type InventorySummaryItem struct {
	ID          uuid.UUID   `json:"id"`
	ProductID   uuid.UUID   `json:"productId"`
	ProductName string      `json:"productName"`
	SKU         string      `json:"sku"`
	Quantity    int         `json:"quantity"`
	MinStock    int         `json:"minStock"`
	MaxStock    int         `json:"maxStock"`
	StockStatus StockStatus `json:"stockStatus"`
	Location    string      `json:"location"`
	LastUpdated time.Time   `json:"lastUpdated"`
	Value       float64     `json:"value"`
}

type InventorySummaryReport struct {
	Summary struct {
		TotalItems       int `json:"totalItems"`
		LowStockCount    int `json:"lowStockCount"`
		HighStockCount   int `json:"highStockCount"`
		NormalStockCount int `json:"normalStockCount"`
	} `json:"summary"`
	Items []InventorySummaryItem `json:"items"`
}

type LowStockReportItem struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	SKU           string    `json:"sku"`
	CurrentStock  int       `json:"currentStock"`
	MinStock      int       `json:"minStock"`
	MaxStock      int       `json:"maxStock"`
	StockDeficit  int       `json:"stockDeficit"`
	ReorderAmount int       `json:"reorderAmount"`
	Location      string    `json:"location"`
	LastUpdated   time.Time `json:"lastUpdated"`
	Urgency       string    `json:"urgency"`
}

type LowStockReport struct {
	Summary struct {
		TotalLowStockItems int `json:"totalLowStockItems"`
		HighUrgency        int `json:"highUrgency"`
		MediumUrgency      int `json:"mediumUrgency"`
		LowUrgency         int `json:"lowUrgency"`
	} `json:"summary"`
	Items []LowStockReportItem `json:"items"`
}

type TransactionsReport struct {
	Summary struct {
		TotalTransactions int `json:"totalTransactions"`
		TotalIn           int `json:"totalIn"`
		TotalOut          int `json:"totalOut"`
		NetChange         int `json:"netChange"`
	} `json:"summary"`
	Transactions []model.StockTransaction `json:"transactions"`
}

type reportService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	invRepo      repository.InventoryRepository
	txRepo       repository.TransactionRepository
}

func NewReportService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	invRepo repository.InventoryRepository,
	txRepo repository.TransactionRepository,
) ReportService {
	return &reportService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		invRepo:      invRepo,
		txRepo:       txRepo,
	}
}

func (s *reportService) Dashboard() (*DashboardReport, error) {
	products, err := s.productRepo.FindAll(repository.ProductFilter{})
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.FindAll("")
	if err != nil {
		return nil, err
	}
	inventory, err := s.invRepo.FindAll()
	if err != nil {
		return nil, err
	}

	productByID := make(map[uuid.UUID]*model.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	report := &DashboardReport{}
	report.Summary = DashboardSummary{
		TotalProducts:       len(products),
		TotalInventoryItems: len(inventory),
		TotalCategories:     len(categories),
		TotalSuppliers:      len(suppliers),
	}

	// Per-category and per-supplier value roll-ups.
	valueByCategory := make(map[uuid.UUID]float64)
	valueBySupplier := make(map[uuid.UUID]float64)
	for _, item := range inventory {
		product, ok := productByID[item.ProductID]
		if !ok {
			continue
		}
		value := float64(item.Quantity) * product.Cost
		report.Summary.TotalValue += value
		valueByCategory[product.CategoryID] += value
		valueBySupplier[product.SupplierID] += value
		if item.Quantity <= product.MinStock {
			report.Summary.LowStockCount++
		}
	}

	report.CategoryDistribution = make([]CategoryDistribution, 0, len(categories))
	for _, c := range categories {
		dist := CategoryDistribution{ID: c.ID, Name: c.Name, Color: c.Color, InventoryValue: valueByCategory[c.ID]}
		for _, p := range products {
			if p.CategoryID == c.ID {
				dist.ProductCount++
			}
		}
		report.CategoryDistribution = append(report.CategoryDistribution, dist)
	}

	report.SupplierDistribution = make([]SupplierDistribution, 0, len(suppliers))
	for _, sup := range suppliers {
		dist := SupplierDistribution{ID: sup.ID, Name: sup.Name, InventoryValue: valueBySupplier[sup.ID]}
		for _, p := range products {
			if p.SupplierID == sup.ID {
				dist.ProductCount++
			}
		}
		report.SupplierDistribution = append(report.SupplierDistribution, dist)
	}

	transactions, err := s.txRepo.FindAll(repository.TransactionFilter{})
	if err != nil {
		return nil, err
	}
	if len(transactions) > 10 {
		transactions = transactions[:10]
	}
	report.RecentTransactions = transactions

	return report, nil
}

func (s *reportService) InventorySummary() (*InventorySummaryReport, error) {
	inventory, err := s.invRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := &InventorySummaryReport{Items: []InventorySummaryItem{}}
	for _, item := range inventory {
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			continue
		}

		status := StockNormal
		switch {
		case item.Quantity <= product.MinStock:
			status = StockLow
			report.Summary.LowStockCount++
		case item.Quantity >= product.MaxStock:
			status = StockHigh
			report.Summary.HighStockCount++
		default:
			report.Summary.NormalStockCount++
		}

		report.Items = append(report.Items, InventorySummaryItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: product.Name,
			SKU:         product.SKU,
			Quantity:    item.Quantity,
			MinStock:    product.MinStock,
			MaxStock:    product.MaxStock,
			StockStatus: status,
			Location:    item.Location,
			LastUpdated: item.LastUpdated,
			Value:       float64(item.Quantity) * product.Cost,
		})
	}
	report.Summary.TotalItems = len(report.Items)

	return report, nil
}

func (s *reportService) LowStock() (*LowStockReport, error) {
	inventory, err := s.invRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report := &LowStockReport{Items: []LowStockReportItem{}}
	for _, item := range inventory {
		product, err := s.productRepo.FindByID(item.ProductID)
		if err != nil {
			continue
		}
		if item.Quantity > product.MinStock {
			continue
		}

		deficit := product.MinStock - item.Quantity
		reorder := product.MaxStock - item.Quantity
		if deficit > reorder {
			reorder = deficit
		}

		urgency := "low"
		switch {
		case deficit > 5:
			urgency = "high"
			report.Summary.HighUrgency++
		case deficit > 2:
			urgency = "medium"
			report.Summary.MediumUrgency++
		default:
			report.Summary.LowUrgency++
		}

		report.Items = append(report.Items, LowStockReportItem{
			ID:            item.ID,
			ProductID:     item.ProductID,
			ProductName:   product.Name,
			SKU:           product.SKU,
			CurrentStock:  item.Quantity,
			MinStock:      product.MinStock,
			MaxStock:      product.MaxStock,
			StockDeficit:  deficit,
			ReorderAmount: reorder,
			Location:      item.Location,
			LastUpdated:   item.LastUpdated,
			Urgency:       urgency,
		})
	}
	report.Summary.TotalLowStockItems = len(report.Items)

	return report, nil
}

func (s *reportService) Transactions(filter repository.TransactionFilter) (*TransactionsReport, error) {
	transactions, err := s.txRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	report := &TransactionsReport{Transactions: transactions}
	report.Summary.TotalTransactions = len(transactions)
	for _, t := range transactions {
		switch t.Type {
		case model.TxIn:
			report.Summary.TotalIn += t.Quantity
		case model.TxOut:
			report.Summary.TotalOut += t.Quantity
		}
	}
	report.Summary.NetChange = report.Summary.TotalIn - report.Summary.TotalOut

	return report, nil
}
