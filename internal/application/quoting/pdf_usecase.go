package quoting

import (
	"context"
	"fmt"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// PDFUseCase genera la representación PDF de una cotización (documento BOQ).
type PDFUseCase struct {
	quoteRepo repository.QuoteRepository
	itemRepo  repository.QuoteItemRepository
	generator QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(quoteRepo repository.QuoteRepository, itemRepo repository.QuoteItemRepository, generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{quoteRepo: quoteRepo, itemRepo: itemRepo, generator: generator}
}

// Generate devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *PDFUseCase) Generate(ctx context.Context, quoteID string) ([]byte, string, error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", err
	}
	if quote == nil {
		return nil, "", domain.ErrQuoteNotFound
	}
	items, err := uc.itemRepo.ListByQuote(quoteID)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.generator.GenerateQuotePDF(ctx, quote, items)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de cotización: %w", err)
	}
	filename := fmt.Sprintf("cotizacion-%s.pdf", quote.ID[:8])
	return pdf, filename, nil
}
