package service

import (
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
)

type ProductService interface {
	List(filter repository.ProductFilter) ([]model.ProductDetail, error)
	Get(id uuid.UUID) (*model.ProductDetail, error)
	Create(req *CreateProductRequest) (*model.ProductDetail, error)
	Update(id uuid.UUID, req *UpdateProductRequest) (*model.ProductDetail, error)
	Delete(id uuid.UUID) error
}

type CreateProductRequest struct {
	Name        string    `json:"name" validate:"required"`
	SKU         string    `json:"sku" validate:"required"`
	Description string    `json:"description"`
	Price       float64   `json:"price" validate:"gte=0"`
	Cost        float64   `json:"cost" validate:"gte=0"`
	CategoryID  uuid.UUID `json:"categoryId" validate:"uuid_required"`
	SupplierID  uuid.UUID `json:"supplierId" validate:"uuid_required"`
	MinStock    int       `json:"minStock" validate:"gte=0"`
	MaxStock    int       `json:"maxStock" validate:"gte=0"`
	Unit        string    `json:"unit"`
	Status      string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateProductRequest whitelists the fields a client may change; nil means
// "leave unchanged".
type UpdateProductRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1"`
	SKU         *string    `json:"sku" validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	Price       *float64   `json:"price" validate:"omitempty,gte=0"`
	Cost        *float64   `json:"cost" validate:"omitempty,gte=0"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	SupplierID  *uuid.UUID `json:"supplierId"`
	MinStock    *int       `json:"minStock" validate:"omitempty,gte=0"`
	MaxStock    *int       `json:"maxStock" validate:"omitempty,gte=0"`
	Unit        *string    `json:"unit"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active inactive"`
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
}

func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *productService) List(filter repository.ProductFilter) ([]model.ProductDetail, error) {
	products, err := s.productRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	details := make([]model.ProductDetail, 0, len(products))
	for _, p := range products {
		details = append(details, *s.enrich(&p))
	}
	return details, nil
}

func (s *productService) Get(id uuid.UUID) (*model.ProductDetail, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return s.enrich(product), nil
}

func (s *productService) Create(req *CreateProductRequest) (*model.ProductDetail, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	if existing, _ := s.productRepo.FindBySKU(req.SKU); existing != nil {
		return nil, ErrSKUExists
	}
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	if _, err := s.supplierRepo.FindByID(req.SupplierID); err != nil {
		return nil, ErrSupplierNotFound
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	product := &model.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
		Unit:        req.Unit,
		Status:      status,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return s.enrich(product), nil
}

func (s *productService) Update(id uuid.UUID, req *UpdateProductRequest) (*model.ProductDetail, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.SKU != nil && *req.SKU != product.SKU {
		if existing, _ := s.productRepo.FindBySKU(*req.SKU); existing != nil {
			return nil, ErrSKUExists
		}
		product.SKU = *req.SKU
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *req.CategoryID
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindByID(*req.SupplierID); err != nil {
			return nil, ErrSupplierNotFound
		}
		product.SupplierID = *req.SupplierID
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		product.MaxStock = *req.MaxStock
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Status != nil {
		product.Status = *req.Status
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return s.enrich(product), nil
}

func (s *productService) Delete(id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *productService) enrich(p *model.Product) *model.ProductDetail {
	detail := &model.ProductDetail{Product: *p}
	if category, err := s.categoryRepo.FindByID(p.CategoryID); err == nil {
		detail.Category = category.ToRef()
	}
	if supplier, err := s.supplierRepo.FindByID(p.SupplierID); err == nil {
		detail.Supplier = supplier.ToRef()
	}
	return detail
}
