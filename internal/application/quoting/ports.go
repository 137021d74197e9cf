package quoting

import (
	"context"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos de cotización atados a una transacción.
// La aplicación del callback es todo-o-nada: si fn retorna error se hace rollback
// y ninguna fila queda a medio actualizar.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		quoteRepo repository.QuoteRepository,
		itemRepo repository.QuoteItemRepository,
	) error) error
}

// QuotePDFGenerator puerto para la representación PDF del BOQ.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote, items []*entity.QuoteItem) ([]byte, error)
}
