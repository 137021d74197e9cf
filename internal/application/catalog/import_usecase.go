package catalog

import (
	"context"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cotizador-api/internal/application/dto"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/repository"
)

// Heurística de encabezados: acepta 'Part Code', 'PartCode', 'sku', 'Price',
// 'Unit Cost', 'Description', etc. sin exigir un layout fijo de columnas.
var (
	codeHeaderRe  = regexp.MustCompile(`(?i)part|sku|code`)
	priceHeaderRe = regexp.MustCompile(`(?i)price|cost`)
	descHeaderRe  = regexp.MustCompile(`(?i)desc|name|product`)
)

const defaultVendor = "Unknown OEM"

// ImportUseCase importa listas de precios desde hojas de cálculo XLSX.
//
// La importación es de éxito parcial por diseño: cada fila inválida (sin columna
// de código o precio reconocible, código vacío, precio no numérico, fallo del
// store) incrementa el contador de errores y se continúa con la siguiente.
// Cada fila válida hace upsert del producto por part code y AGREGA una entrada
// al historial de precios; nada del historial anterior se sobreescribe.
type ImportUseCase struct {
	productRepo repository.ProductRepository
	priceRepo   repository.PriceEntryRepository
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(productRepo repository.ProductRepository, priceRepo repository.PriceEntryRepository) *ImportUseCase {
	return &ImportUseCase{productRepo: productRepo, priceRepo: priceRepo}
}

// ImportPriceList procesa la primera hoja del archivo. La primera fila son los
// encabezados; vendor etiqueta el OEM origen de todas las entradas del lote.
func (uc *ImportUseCase) ImportPriceList(_ context.Context, r io.Reader, vendor string) (*dto.ImportResult, error) {
	if vendor == "" {
		vendor = defaultVendor
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	result := &dto.ImportResult{}
	if len(rows) < 2 {
		return result, nil
	}

	codeIdx, priceIdx, descIdx := matchHeaders(rows[0])

	for _, row := range rows[1:] {
		// Sin columnas de código o precio reconocibles no hay fila procesable.
		if codeIdx < 0 || priceIdx < 0 {
			result.Errors++
			continue
		}

		partCode := strings.TrimSpace(cell(row, codeIdx))
		price, perr := decimal.NewFromString(strings.TrimSpace(cell(row, priceIdx)))
		if partCode == "" || perr != nil {
			result.Errors++
			continue
		}

		name := "Imported Product"
		if descIdx >= 0 {
			if d := strings.TrimSpace(cell(row, descIdx)); d != "" {
				name = d
			}
		}

		if err := uc.upsertRow(partCode, name, descIdx >= 0, price, vendor); err != nil {
			result.Errors++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// upsertRow crea o refresca el producto y agrega la entrada de precio.
func (uc *ImportUseCase) upsertRow(partCode, name string, hasDesc bool, price decimal.Decimal, vendor string) error {
	now := time.Now()

	product, err := uc.productRepo.GetByPartCode(partCode)
	if err != nil {
		return err
	}
	if product == nil {
		product = &entity.Product{
			ID:        uuid.New().String(),
			PartCode:  partCode,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.productRepo.Create(product); err != nil {
			return err
		}
	} else if hasDesc {
		// Solo se refresca el nombre cuando la hoja trae columna de descripción.
		product.Name = name
		product.UpdatedAt = now
		if err := uc.productRepo.Update(product); err != nil {
			return err
		}
	}

	return uc.priceRepo.Create(&entity.PriceEntry{
		ID:            uuid.New().String(),
		ProductID:     product.ID,
		Price:         price,
		Currency:      "USD", // la hoja no trae moneda; se asume USD como el resto del sistema
		Vendor:        vendor,
		EffectiveDate: now,
	})
}

// matchHeaders devuelve los índices de columna de código, precio y descripción (-1 = ausente).
func matchHeaders(headers []string) (codeIdx, priceIdx, descIdx int) {
	codeIdx, priceIdx, descIdx = -1, -1, -1
	for i, h := range headers {
		if codeIdx < 0 && codeHeaderRe.MatchString(h) {
			codeIdx = i
		}
		if priceIdx < 0 && priceHeaderRe.MatchString(h) {
			priceIdx = i
		}
		if descIdx < 0 && descHeaderRe.MatchString(h) {
			descIdx = i
		}
	}
	return codeIdx, priceIdx, descIdx
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
