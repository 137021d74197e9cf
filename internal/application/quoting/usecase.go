package quoting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// QuoteUseCase ciclo de vida de cotizaciones y motor de precios.
//
// Toda mutación que toca líneas y totales (AddItem, Recalculate, DeleteItem)
// corre dentro de una sola transacción del TxRunner: la inserción/borrado del
// ítem y la actualización de precios y agregados se confirman juntas, de modo
// que nunca se observa una cotización con totales desfasados de sus líneas.
type QuoteUseCase struct {
	txRunner     TxRunner
	quoteRepo    repository.QuoteRepository
	itemRepo     repository.QuoteItemRepository
	productRepo  repository.ProductRepository
	priceRepo    repository.PriceEntryRepository
	customerRepo repository.CustomerRepository
}

// NewQuoteUseCase construye el caso de uso.
func NewQuoteUseCase(
	txRunner TxRunner,
	quoteRepo repository.QuoteRepository,
	itemRepo repository.QuoteItemRepository,
	productRepo repository.ProductRepository,
	priceRepo repository.PriceEntryRepository,
	customerRepo repository.CustomerRepository,
) *QuoteUseCase {
	return &QuoteUseCase{
		txRunner:     txRunner,
		quoteRepo:    quoteRepo,
		itemRepo:     itemRepo,
		productRepo:  productRepo,
		priceRepo:    priceRepo,
		customerRepo: customerRepo,
	}
}

// Create crea una cotización en estado DRAFT.
// ClientName es obligatorio; si viene vacío pero hay CustomerID se copia el
// nombre del cliente (después es libremente editable en la cabecera).
func (uc *QuoteUseCase) Create(in dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	clientName := in.ClientName
	if clientName == "" && in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer != nil {
			clientName = customer.Name
		}
	}
	if clientName == "" {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	quote := &entity.Quote{
		ID:         uuid.New().String(),
		ClientName: clientName,
		CustomerID: in.CustomerID,
		Status:     entity.QuoteStatusDraft,
		Margin:     decimal.Zero,
		TaxRate:    decimal.Zero,
		TotalCost:  decimal.Zero,
		TotalPrice: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.quoteRepo.Create(quote); err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, nil), nil
}

// GetByID devuelve la cotización con sus líneas ordenadas por part code.
func (uc *QuoteUseCase) GetByID(id string) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrQuoteNotFound
	}
	items, err := uc.itemRepo.ListByQuote(id)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote, items), nil
}

// List lista cotizaciones (solo cabeceras) con paginación.
func (uc *QuoteUseCase) List(limit, offset int) (*dto.QuoteListResponse, error) {
	list, err := uc.quoteRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q, nil))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AddItem agrega un ítem del catálogo y recalcula la cotización en la misma transacción.
//
// El costo unitario se resuelve con la entrada de precio más reciente del producto
// (sin historial el costo es 0) y queda congelado en la línea. El precio provisional
// costo × 1.1 existe solo hasta la recalculación, que corre antes del commit.
//
// Quantity cero se trata como 1 (omisión en el request); valores negativos se
// aceptan sin validar, igual que el comportamiento histórico del sistema.
func (uc *QuoteUseCase) AddItem(ctx context.Context, quoteID, partCode string, quantity int) error {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrQuoteNotFound
	}

	product, err := uc.productRepo.GetByPartCode(partCode)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	latest, err := uc.priceRepo.LatestByProduct(product.ID)
	if err != nil {
		return err
	}
	unitCost := decimal.Zero
	if latest != nil {
		unitCost = latest.Price
	}

	if quantity == 0 {
		quantity = 1
	}

	item := &entity.QuoteItem{
		ID:        uuid.New().String(),
		QuoteID:   quoteID,
		PartCode:  product.PartCode,
		Name:      product.Name,
		Quantity:  quantity,
		UnitCost:  unitCost,
		UnitPrice: unitCost.Mul(initialMarkup),
	}

	return uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return recalcInTx(quote, quoteRepo, itemRepo)
	})
}

// Recalculate recalcula precios unitarios y agregados de la cotización.
// Margin y TaxRate nil reutilizan los valores almacenados. Todas las líneas y la
// cabecera se actualizan como una unidad atómica.
func (uc *QuoteUseCase) Recalculate(ctx context.Context, quoteID string, in dto.RecalculateRequest) (*dto.QuoteResponse, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrQuoteNotFound
	}
	if in.Margin != nil {
		quote.Margin = *in.Margin
	}
	if in.TaxRate != nil {
		quote.TaxRate = *in.TaxRate
	}

	err = uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		return recalcInTx(quote, quoteRepo, itemRepo)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(quoteID)
}

// DeleteItem elimina una línea y recalcula con el margen/impuesto almacenados,
// dentro de la misma transacción.
func (uc *QuoteUseCase) DeleteItem(ctx context.Context, itemID, quoteID string) error {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrQuoteNotFound
	}

	return uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := itemRepo.Delete(itemID, quoteID); err != nil {
			return err
		}
		return recalcInTx(quote, quoteRepo, itemRepo)
	})
}

// Delete elimina la cotización y sus líneas (hijas primero).
func (uc *QuoteUseCase) Delete(ctx context.Context, quoteID string) error {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrQuoteNotFound
	}
	return uc.txRunner.Run(ctx, func(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
		if err := itemRepo.DeleteByQuote(quoteID); err != nil {
			return err
		}
		return quoteRepo.Delete(quoteID)
	})
}

// recalcInTx relee las líneas con los repos transaccionales, aplica ComputeTotals
// y persiste cada precio unitario más la cabecera. Debe ejecutarse dentro de Run.
func recalcInTx(quote *entity.Quote, quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository) error {
	items, err := itemRepo.ListByQuote(quote.ID)
	if err != nil {
		return err
	}

	result := ComputeTotals(items, quote.Margin, quote.TaxRate)

	for i, item := range items {
		if err := itemRepo.UpdateUnitPrice(item.ID, result.UnitPrices[i]); err != nil {
			return err
		}
	}

	quote.TotalCost = result.TotalCost
	quote.TotalPrice = result.TotalPrice
	quote.UpdatedAt = time.Now()
	return quoteRepo.UpdatePricing(quote)
}

func toQuoteResponse(q *entity.Quote, items []*entity.QuoteItem) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	resp := &dto.QuoteResponse{
		ID:         q.ID,
		ClientName: q.ClientName,
		CustomerID: q.CustomerID,
		Status:     q.Status,
		Margin:     q.Margin,
		TaxRate:    q.TaxRate,
		TotalCost:  q.TotalCost,
		TotalPrice: q.TotalPrice,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.QuoteItemResponse{
			ID:        it.ID,
			PartCode:  it.PartCode,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			UnitPrice: it.UnitPrice,
		})
	}
	return resp
}
