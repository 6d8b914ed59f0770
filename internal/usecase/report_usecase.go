package usecase

import (
	"context"
	"crm_assistencia/internal/domain/entities"
	"crm_assistencia/internal/usecase/interfaces"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var ErrUnknownReport = fmt.Errorf("unknown report: %w", entities.ErrNotFound)

type ReportKind string

const (
	ReportSales       ReportKind = "sales"
	ReportTechnicians ReportKind = "technicians"
	ReportInventory   ReportKind = "inventory"
	ReportCustomers   ReportKind = "customers"
	ReportEquipment   ReportKind = "equipment"
)

// ReportTable is plain tabular data ready for export.
type ReportTable struct {
	Title    string     `json:"title"`
	Filename string     `json:"filename"`
	Headers  []string   `json:"headers"`
	Rows     [][]string `json:"rows"`
}

type ReportFilter struct {
	From   time.Time
	To     time.Time
	Status entities.ServiceOrderStatus
	Search string
}

type Dashboard struct {
	Customers       int                                 `json:"customers"`
	Products        int                                 `json:"products"`
	ServiceOrders   int                                 `json:"service_orders"`
	PendingOrders   int                                 `json:"pending_orders"`
	CompletedOrders int                                 `json:"completed_orders"`
	CompletionRate  float64                             `json:"completion_rate"`
	OrdersByStatus  map[entities.ServiceOrderStatus]int `json:"orders_by_status"`
	Sales           int                                 `json:"sales"`
	Revenue         decimal.Decimal                     `json:"revenue"`
	AverageTicket   decimal.Decimal                     `json:"average_ticket"`
	StockValue      decimal.Decimal                     `json:"stock_value"`
	LowStock        []entities.Product                  `json:"low_stock"`
	RecentOrders    []entities.ServiceOrder             `json:"recent_orders"`
}

type IReportUseCase interface {
	Dashboard(ctx context.Context) (Dashboard, error)
	Generate(ctx context.Context, kind ReportKind, filter ReportFilter) (ReportTable, error)
}

// ReportUseCase recomputes every aggregate from a consistent snapshot on read.
// Dates are rendered in loc, the same zone the date filters are parsed in.
type ReportUseCase struct {
	store interfaces.IStore
	now   func() time.Time
	loc   *time.Location
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IStore, now func() time.Time, loc *time.Location) *ReportUseCase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReportUseCase{store: store, now: now, loc: loc}
}

const recentOrdersLimit = 5

func (u *ReportUseCase) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		orders := v.ListServiceOrders()
		products := v.ListProducts()
		sales := v.ListSales()

		d = Dashboard{
			Customers:      len(v.ListCustomers()),
			Products:       len(products),
			ServiceOrders:  len(orders),
			OrdersByStatus: map[entities.ServiceOrderStatus]int{},
			Sales:          len(sales),
			Revenue:        decimal.Zero,
			AverageTicket:  decimal.Zero,
			StockValue:     decimal.Zero,
			LowStock:       []entities.Product{},
		}
		for _, o := range orders {
			d.OrdersByStatus[o.Status]++
			if o.Status.IsTerminal() {
				d.CompletedOrders++
			} else {
				d.PendingOrders++
			}
		}
		if len(orders) > 0 {
			d.CompletionRate = float64(d.CompletedOrders) / float64(len(orders)) * 100
		}
		for _, s := range sales {
			d.Revenue = d.Revenue.Add(s.Total)
		}
		if len(sales) > 0 {
			d.AverageTicket = d.Revenue.Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
		}
		for _, p := range products {
			d.StockValue = d.StockValue.Add(p.StockValue())
			if p.IsLowStock() {
				d.LowStock = append(d.LowStock, p)
			}
		}

		recent := slices.Clone(orders)
		slices.SortStableFunc(recent, func(a, b entities.ServiceOrder) int { return b.CreatedAt.Compare(a.CreatedAt) })
		d.RecentOrders = recent[:min(recentOrdersLimit, len(recent))]
		return nil
	})
	return d, err
}

func (u *ReportUseCase) Generate(ctx context.Context, kind ReportKind, filter ReportFilter) (ReportTable, error) {
	var (
		table ReportTable
		build func(v interfaces.IStoreView, filter ReportFilter, loc *time.Location) ReportTable
	)
	switch kind {
	case ReportSales:
		build = salesReport
	case ReportTechnicians:
		build = technicianReport
	case ReportInventory:
		build = inventoryReport
	case ReportCustomers:
		build = customersReport
	case ReportEquipment:
		build = equipmentReport
	default:
		return ReportTable{}, fmt.Errorf("%q: %w", kind, ErrUnknownReport)
	}
	err := u.store.View(ctx, func(v interfaces.IStoreView) error {
		table = build(v, filter, u.loc)
		return nil
	})
	if err != nil {
		return ReportTable{}, err
	}
	table.Filename = fmt.Sprintf("%s-%s", table.Filename, u.now().In(u.loc).Format("2006-01-02"))
	return table, nil
}

func customerName(v interfaces.IStoreView, id string) string {
	if c, err := v.GetCustomer(id); err == nil {
		return c.Name
	}
	return "N/A"
}

func productName(v interfaces.IStoreView, id string) string {
	if p, err := v.GetProduct(id); err == nil {
		return p.Name
	}
	return "N/A"
}

func salesReport(v interfaces.IStoreView, filter ReportFilter, loc *time.Location) ReportTable {
	t := ReportTable{
		Title:    "Relatório de Vendas",
		Filename: "relatorio-vendas",
		Headers:  []string{"ID", "Cliente", "Técnico", "Total (R$)", "Data", "Produtos"},
		Rows:     [][]string{},
	}
	for _, s := range v.ListSales() {
		if !withinRange(s.CreatedAt, filter.From, filter.To) {
			continue
		}
		products := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			products = append(products, fmt.Sprintf("%s (%dx)", productName(v, it.ProductID), it.Quantity))
		}
		t.Rows = append(t.Rows, []string{
			s.ID,
			customerName(v, s.CustomerID),
			s.Technician,
			FormatCurrency(s.Total),
			FormatDate(s.CreatedAt, loc),
			strings.Join(products, ", "),
		})
	}
	return t
}

type technicianStats struct {
	orders     int
	completed  int
	usedParts  int
	equipments map[string]struct{}
}

func technicianReport(v interfaces.IStoreView, filter ReportFilter, _ *time.Location) ReportTable {
	t := ReportTable{
		Title:    "Relatório por Técnico",
		Filename: "relatorio-tecnicos",
		Headers:  []string{"Técnico", "Total de OS", "OS Finalizadas", "Taxa de Conclusão (%)", "Peças Utilizadas", "Equipamentos Atendidos"},
		Rows:     [][]string{},
	}
	stats := map[string]*technicianStats{}
	var order []string
	for _, o := range v.ListServiceOrders() {
		if !withinRange(o.CreatedAt, filter.From, filter.To) {
			continue
		}
		st, ok := stats[o.Technician]
		if !ok {
			st = &technicianStats{equipments: map[string]struct{}{}}
			stats[o.Technician] = st
			order = append(order, o.Technician)
		}
		st.orders++
		if o.Status == entities.ServiceOrderStatusCompleted {
			st.completed++
		}
		st.usedParts += len(o.UsedParts)
		st.equipments[o.Equipment] = struct{}{}
	}
	for _, tech := range order {
		st := stats[tech]
		rate := float64(st.completed) / float64(st.orders) * 100
		t.Rows = append(t.Rows, []string{
			tech,
			strconv.Itoa(st.orders),
			strconv.Itoa(st.completed),
			strconv.FormatFloat(rate, 'f', 1, 64),
			strconv.Itoa(st.usedParts),
			strconv.Itoa(len(st.equipments)),
		})
	}
	return t
}

func inventoryReport(v interfaces.IStoreView, _ ReportFilter, _ *time.Location) ReportTable {
	t := ReportTable{
		Title:    "Relatório de Estoque",
		Filename: "relatorio-estoque",
		Headers:  []string{"Nome", "Categoria", "Tipo", "Quantidade", "Qtd. Mínima", "Preço (R$)", "Status", "Valor Total (R$)"},
		Rows:     [][]string{},
	}
	for _, p := range v.ListProducts() {
		status := "Normal"
		if p.IsLowStock() {
			status = "Estoque Baixo"
		}
		t.Rows = append(t.Rows, []string{
			p.Name,
			p.Category,
			p.Kind.Label(),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinQuantity),
			FormatCurrency(p.Price),
			status,
			FormatCurrency(p.StockValue()),
		})
	}
	return t
}

func customersReport(v interfaces.IStoreView, filter ReportFilter, loc *time.Location) ReportTable {
	t := ReportTable{
		Title:    "Relatório de Clientes",
		Filename: "relatorio-clientes",
		Headers:  []string{"Nome", "CPF", "Telefone", "Email", "Endereço", "Tipo de Serviço", "Data de Cadastro"},
		Rows:     [][]string{},
	}
	for _, c := range v.ListCustomers() {
		if !withinRange(c.CreatedAt, filter.From, filter.To) {
			continue
		}
		t.Rows = append(t.Rows, []string{
			c.Name,
			c.TaxID,
			c.Phone,
			c.Email,
			c.Address,
			c.ServiceType.Label(),
			FormatDate(c.CreatedAt, loc),
		})
	}
	return t
}

func equipmentReport(v interfaces.IStoreView, filter ReportFilter, loc *time.Location) ReportTable {
	t := ReportTable{
		Title:    "Relatório de Equipamentos e Descrições",
		Filename: "relatorio-equipamentos",
		Headers:  []string{"OS", "Cliente", "Equipamento", "Descrição do Problema", "Técnico", "Status", "Data", "Observações"},
		Rows:     [][]string{},
	}
	search := normalizeSearch(filter.Search)
	for _, o := range v.ListServiceOrders() {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if !withinRange(o.CreatedAt, filter.From, filter.To) {
			continue
		}
		if search != "" && !matchesOrder(v, o, search) {
			continue
		}
		observations := o.Observations
		if observations == "" {
			observations = "Nenhuma observação"
		}
		t.Rows = append(t.Rows, []string{
			o.ID,
			customerName(v, o.CustomerID),
			o.Equipment,
			o.Description,
			o.Technician,
			o.Status.Label(),
			FormatDate(o.CreatedAt, loc),
			observations,
		})
	}
	return t
}

// FormatCurrency renders 1234.5 as "1234,50".
func FormatCurrency(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// FormatDate renders dd/mm/yyyy in loc.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("02/01/2006")
}
