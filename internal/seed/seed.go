// Package seed populates an empty store with a default admin account and a
// small demo dataset so a fresh instance is immediately usable.
package seed

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/server"

	"go.uber.org/zap"
)

const (
	adminEmail    = "admin@inventory.com"
	adminPassword = "admin123"
)

// Run is idempotent: the admin is created only when missing and demo data only
// when no categories exist yet.
func Run(repos server.Repositories) error {
	if err := adminUser(repos); err != nil {
		return err
	}
	return demoData(repos)
}

func adminUser(repos server.Repositories) error {
	if _, err := repos.Users.FindByEmail(adminEmail); err == nil {
		return nil
	}

	admin := &model.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     adminEmail,
		Role:      model.RoleAdmin,
	}
	if err := admin.SetPassword(adminPassword); err != nil {
		return err
	}
	if err := repos.Users.Create(admin); err != nil {
		return err
	}
	zap.L().Info("admin user created", zap.String("email", adminEmail))
	return nil
}

func demoData(repos server.Repositories) error {
	existing, err := repos.Categories.FindAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	categories := []*model.Category{
		{Name: "Electronics", Description: "Electronic devices and accessories", Color: "#3B82F6", Status: model.StatusActive},
		{Name: "Office Furniture", Description: "Office chairs, desks, and furniture", Color: "#10B981", Status: model.StatusActive},
		{Name: "Garden & Outdoor", Description: "Garden tools and outdoor equipment", Color: "#F59E0B", Status: model.StatusActive},
		{Name: "Kitchen & Dining", Description: "Kitchen appliances and dining items", Color: "#EF4444", Status: model.StatusActive},
		{Name: "Clothing & Apparel", Description: "Clothing, shoes, and accessories", Color: "#8B5CF6", Status: model.StatusActive},
	}
	for _, c := range categories {
		if err := repos.Categories.Create(c); err != nil {
			return err
		}
	}

	suppliers := []*model.Supplier{
		{Name: "Tech Solutions Inc.", ContactPerson: "John Smith", Email: "john@techsolutions.com", Phone: "+1-555-0123", Address: "123 Tech Street, Silicon Valley, CA 94025", Status: model.StatusActive},
		{Name: "Office Supplies Co.", ContactPerson: "Sarah Johnson", Email: "sarah@officesupplies.com", Phone: "+1-555-0456", Address: "456 Office Ave, Business District, NY 10001", Status: model.StatusActive},
		{Name: "Furniture World", ContactPerson: "Mike Davis", Email: "mike@furnitureworld.com", Phone: "+1-555-0789", Address: "789 Furniture Blvd, Design Center, TX 75001", Status: model.StatusActive},
	}
	for _, s := range suppliers {
		if err := repos.Suppliers.Create(s); err != nil {
			return err
		}
	}

	products := []*model.Product{
		{
			Name: "Laptop Computer", SKU: "LAP001",
			Description: "High-performance laptop for business use",
			Price:       999.99, Cost: 650.00,
			CategoryID: categories[0].ID, SupplierID: suppliers[0].ID,
			MinStock: 10, MaxStock: 50, Unit: "pcs", Status: model.StatusActive,
		},
		{
			Name: "Wireless Mouse", SKU: "MOU001",
			Description: "Ergonomic wireless mouse with USB receiver",
			Price:       29.99, Cost: 12.50,
			CategoryID: categories[0].ID, SupplierID: suppliers[1].ID,
			MinStock: 20, MaxStock: 200, Unit: "pcs", Status: model.StatusActive,
		},
		{
			Name: "Office Chair", SKU: "CHR001",
			Description: "Comfortable office chair with lumbar support",
			Price:       199.99, Cost: 95.00,
			CategoryID: categories[1].ID, SupplierID: suppliers[2].ID,
			MinStock: 10, MaxStock: 60, Unit: "pcs", Status: model.StatusActive,
		},
	}
	for _, p := range products {
		if err := repos.Products.Create(p); err != nil {
			return err
		}
	}

	locations := []string{"Warehouse A - Shelf 1", "Warehouse A - Shelf 2", "Warehouse B - Section 1"}
	quantities := []int{15, 45, 8}
	items := make([]*model.InventoryItem, 0, len(products))
	for i, p := range products {
		item := &model.InventoryItem{
			ProductID:   p.ID,
			Quantity:    quantities[i],
			Location:    locations[i],
			LastUpdated: time.Now(),
		}
		if err := repos.Inventory.Create(item); err != nil {
			return err
		}
		items = append(items, item)
	}

	admin, err := repos.Users.FindByEmail(adminEmail)
	if err != nil {
		return err
	}
	history := []*model.StockTransaction{
		{InventoryID: items[0].ID, Type: model.TxIn, Quantity: 15, Reason: "Initial stock", UserID: admin.ID},
		{InventoryID: items[1].ID, Type: model.TxIn, Quantity: 50, Reason: "Initial stock", UserID: admin.ID},
		{InventoryID: items[1].ID, Type: model.TxOut, Quantity: 5, Reason: "Store transfer", UserID: admin.ID},
	}
	for _, entry := range history {
		if err := repos.Transactions.Create(entry); err != nil {
			return err
		}
	}

	zap.L().Info("demo data seeded",
		zap.Int("categories", len(categories)),
		zap.Int("suppliers", len(suppliers)),
		zap.Int("products", len(products)),
	)
	return nil
}
