package memory

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SeedDemoData loads the demo customers, products and service orders in one
// transaction.
func SeedDemoData(ctx context.Context, store interfaces.IStore) error {
	return store.RunInTransaction(ctx, func(tx interfaces.ITransaction) error {
		customers := []entities.Customer{
			{Name: "João Silva", TaxID: "123.456.789-10", Phone: "(11) 99999-9999", Email: "joao@email.com", Address: "Rua A, 123", ServiceType: entities.ServiceTypeMaintenance},
			{Name: "Maria Santos", TaxID: "987.654.321-10", Phone: "(11) 88888-8888", Email: "maria@email.com", Address: "Rua B, 456", ServiceType: entities.ServiceTypeReplacement},
			{Name: "Carlos Oliveira", TaxID: "456.789.123-45", Phone: "(11) 77777-7777", Email: "carlos@email.com", Address: "Rua C, 789", ServiceType: entities.ServiceTypeMaintenance},
		}
		customerIDs := make([]string, 0, len(customers))
		for _, c := range customers {
			created, err := tx.CreateCustomer(c)
			if err != nil {
				return err
			}
			customerIDs = append(customerIDs, created.ID)
		}

		products := []entities.Product{
			{Name: "HD 1TB", Kind: entities.ProductKindPhysical, Category: "Storage", Quantity: 15, MinQuantity: 5, Price: decimal.RequireFromString("250.00"), Description: "Hard Drive 1TB SATA"},
			{Name: "Memória RAM 8GB", Kind: entities.ProductKindPhysical, Category: "Memory", Quantity: 3, MinQuantity: 5, Price: decimal.RequireFromString("180.00"), Description: "DDR4 8GB 2400MHz"},
			{Name: "Windows 11 Pro", Kind: entities.ProductKindVirtual, Category: "Software", Quantity: 50, MinQuantity: 10, Price: decimal.RequireFromString("350.00"), Description: "Licença Windows 11 Pro"},
			{Name: "SSD 500GB", Kind: entities.ProductKindPhysical, Category: "Storage", Quantity: 8, MinQuantity: 3, Price: decimal.RequireFromString("320.00"), Description: "SSD SATA 500GB"},
			{Name: "Placa de Vídeo GTX 1660", Kind: entities.ProductKindPhysical, Category: "Graphics", Quantity: 2, MinQuantity: 3, Price: decimal.RequireFromString("1200.00"), Description: "NVIDIA GTX 1660 6GB"},
		}
		productIDs := make([]string, 0, len(products))
		for _, p := range products {
			created, err := tx.CreateProduct(p)
			if err != nil {
				return err
			}
			productIDs = append(productIDs, created.ID)
		}

		orders := []entities.ServiceOrder{
			{CustomerID: customerIDs[0], Description: "Computador não liga", Equipment: "Desktop Dell", Status: entities.ServiceOrderStatusAnalyzing, Technician: "Técnico João", Observations: "Verificar fonte de alimentação"},
			{CustomerID: customerIDs[1], Description: "Tela azul frequente", Equipment: "Notebook Lenovo", Status: entities.ServiceOrderStatusWaitingParts, Technician: "Técnico João", Observations: "Necessário trocar memória RAM", UsedParts: []string{productIDs[1]}},
			{CustomerID: customerIDs[2], Description: "Sistema lento", Equipment: "Desktop HP", Status: entities.ServiceOrderStatusCompleted, Technician: "Técnico Maria", Observations: "Instalado SSD e migrado sistema", UsedParts: []string{productIDs[3]}},
		}
		for _, o := range orders {
			if _, err := tx.CreateServiceOrder(o); err != nil {
				return err
			}
		}
		return nil
	})
}
