package service

import (
	"stockroom/internal/model"
	"stockroom/internal/repository"

	"github.com/google/uuid"
)

type SupplierService interface {
	List(search string) ([]model.Supplier, error)
	Get(id uuid.UUID) (*model.Supplier, error)
	Create(req *CreateSupplierRequest) (*model.Supplier, error)
	Update(id uuid.UUID, req *UpdateSupplierRequest) (*model.Supplier, error)
	Delete(id uuid.UUID) error
}

type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Status        string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
	Status        *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type supplierService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func NewSupplierService(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) SupplierService {
	return &supplierService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

func (s *supplierService) List(search string) ([]model.Supplier, error) {
	return s.supplierRepo.FindAll(search)
}

func (s *supplierService) Get(id uuid.UUID) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) Create(req *CreateSupplierRequest) (*model.Supplier, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.StatusActive
	}

	supplier := &model.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        status,
	}
	if err := s.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Update(id uuid.UUID, req *UpdateSupplierRequest) (*model.Supplier, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Status != nil {
		supplier.Status = *req.Status
	}

	if err := s.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(id uuid.UUID) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return ErrSupplierNotFound
	}

	count, err := s.productRepo.CountBySupplier(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrSupplierInUse
	}

	return s.supplierRepo.Delete(id)
}
