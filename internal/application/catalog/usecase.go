package catalog

import (
	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// UseCase consultas de catálogo: búsqueda con precio vigente e historial.
type UseCase struct {
	productRepo repository.ProductRepository
	priceRepo   repository.PriceEntryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(productRepo repository.ProductRepository, priceRepo repository.PriceEntryRepository) *UseCase {
	return &UseCase{productRepo: productRepo, priceRepo: priceRepo}
}

// Search busca por part code o nombre. Términos de menos de 2 caracteres
// devuelven vacío sin consultar el store.
func (uc *UseCase) Search(term string, limit int) ([]dto.ProductResponse, error) {
	if len(term) < 2 {
		return []dto.ProductResponse{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	hits, err := uc.productRepo.Search(term, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(hits))
	for _, h := range hits {
		items = append(items, toProductResponse(h))
	}
	return items, nil
}

// PriceHistory devuelve el historial completo de precios de un producto,
// de más reciente a más antiguo.
func (uc *UseCase) PriceHistory(productID string) ([]dto.PriceEntryResponse, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	entries, err := uc.priceRepo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.PriceEntryResponse{
			ID:            e.ID,
			Price:         e.Price,
			Currency:      e.Currency,
			Vendor:        e.Vendor,
			EffectiveDate: e.EffectiveDate,
		})
	}
	return items, nil
}

// List lista productos con paginación (sin precio, para el listado plano del catálogo).
func (uc *UseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductResponse{
			ID:        p.ID,
			PartCode:  p.PartCode,
			Name:      p.Name,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
		})
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toProductResponse(h *entity.ProductWithPrice) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:        h.Product.ID,
		PartCode:  h.Product.PartCode,
		Name:      h.Product.Name,
		CreatedAt: h.Product.CreatedAt,
		UpdatedAt: h.Product.UpdatedAt,
	}
	if h.Latest != nil {
		price := h.Latest.Price
		resp.Price = &price
		resp.Currency = h.Latest.Currency
		resp.Vendor = h.Latest.Vendor
	}
	return resp
}
