package catalog

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	byPartCode map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{byPartCode: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byPartCode[p.PartCode] = &cp
	return nil
}

func (r *memProductRepo) GetByID(string) (*entity.Product, error) { return nil, nil }

func (r *memProductRepo) GetByPartCode(pc string) (*entity.Product, error) {
	p, ok := r.byPartCode[pc]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	stored, ok := r.byPartCode[p.PartCode]
	if !ok {
		return nil
	}
	stored.Name = p.Name
	stored.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *memProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Search(string, int) ([]*entity.ProductWithPrice, error) {
	return nil, nil
}

type memPriceRepo struct {
	entries []*entity.PriceEntry
}

func (r *memPriceRepo) Create(e *entity.PriceEntry) error {
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *memPriceRepo) LatestByProduct(string) (*entity.PriceEntry, error) { return nil, nil }
func (r *memPriceRepo) ListByProduct(productID string) ([]*entity.PriceEntry, error) {
	var out []*entity.PriceEntry
	for _, e := range r.entries {
		if e.ProductID == productID {
			out = append(out, e)
		}
	}
	return out, nil
}

// buildXLSX arma un libro con los encabezados y filas dados en la primera hoja.
func buildXLSX(t *testing.T, rows [][]string) io.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestImportPriceList_HojaValida(t *testing.T) {
	products := newMemProductRepo()
	prices := &memPriceRepo{}
	uc := NewImportUseCase(products, prices)

	r := buildXLSX(t, [][]string{
		{"Part Code", "Description", "Unit Price"},
		{"SW-100", "Switch 24 puertos", "199.99"},
		{"RT-200", "Router core", "1250"},
	})

	result, err := uc.ImportPriceList(context.Background(), r, "Cisco")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 0, result.Errors)

	p := products.byPartCode["SW-100"]
	require.NotNil(t, p)
	assert.Equal(t, "Switch 24 puertos", p.Name)

	require.Len(t, prices.entries, 2)
	assert.Equal(t, "Cisco", prices.entries[0].Vendor)
	assert.Equal(t, "USD", prices.entries[0].Currency)
	assert.True(t, prices.entries[0].Price.Equal(decimal.RequireFromString("199.99")))
}

// Las filas inválidas se cuentan y se saltan; el resto del lote se importa igual.
func TestImportPriceList_ExitoParcial(t *testing.T) {
	products := newMemProductRepo()
	prices := &memPriceRepo{}
	uc := NewImportUseCase(products, prices)

	r := buildXLSX(t, [][]string{
		{"SKU", "Name", "Cost"},
		{"SW-100", "Switch", "199.99"},
		{"", "Sin código", "50"},        // código vacío
		{"BAD-1", "Precio roto", "abc"}, // precio no numérico
		{"RT-200", "Router", "1250"},
	})

	result, err := uc.ImportPriceList(context.Background(), r, "")

	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 2, result.Errors)
	// Sin vendor en el request se etiqueta con el OEM por defecto
	require.NotEmpty(t, prices.entries)
	assert.Equal(t, "Unknown OEM", prices.entries[0].Vendor)
}

// Reimportar un part code existente AGREGA al historial, nunca sobreescribe.
func TestImportPriceList_HistorialAppendOnly(t *testing.T) {
	products := newMemProductRepo()
	prices := &memPriceRepo{}
	uc := NewImportUseCase(products, prices)

	first := buildXLSX(t, [][]string{
		{"Part Code", "Description", "Price"},
		{"SW-100", "Switch 24 puertos", "199.99"},
	})
	_, err := uc.ImportPriceList(context.Background(), first, "Cisco")
	require.NoError(t, err)

	second := buildXLSX(t, [][]string{
		{"Part Code", "Description", "Price"},
		{"SW-100", "Switch 24p Gen2", "189.00"},
	})
	_, err = uc.ImportPriceList(context.Background(), second, "Cisco")
	require.NoError(t, err)

	// Un solo producto, dos entradas de precio
	assert.Len(t, products.byPartCode, 1)
	assert.Equal(t, "Switch 24p Gen2", products.byPartCode["SW-100"].Name,
		"el nombre se refresca cuando la hoja trae descripción")

	history, err := prices.ListByProduct(products.byPartCode["SW-100"].ID)
	require.NoError(t, err)
	assert.Len(t, history, 2, "el historial es append-only")
}

// Sin columna de descripción el nombre existente se conserva.
func TestImportPriceList_SinDescripcionConservaNombre(t *testing.T) {
	products := newMemProductRepo()
	prices := &memPriceRepo{}
	uc := NewImportUseCase(products, prices)

	first := buildXLSX(t, [][]string{
		{"Part Code", "Description", "Price"},
		{"SW-100", "Switch 24 puertos", "199.99"},
	})
	_, err := uc.ImportPriceList(context.Background(), first, "Cisco")
	require.NoError(t, err)

	second := buildXLSX(t, [][]string{
		{"Part Code", "Price"},
		{"SW-100", "210"},
	})
	_, err = uc.ImportPriceList(context.Background(), second, "Cisco")
	require.NoError(t, err)

	assert.Equal(t, "Switch 24 puertos", products.byPartCode["SW-100"].Name)
}

// Encabezados sin columnas reconocibles: cada fila de datos cuenta como error.
func TestImportPriceList_EncabezadosIrreconocibles(t *testing.T) {
	uc := NewImportUseCase(newMemProductRepo(), &memPriceRepo{})

	r := buildXLSX(t, [][]string{
		{"Columna A", "Columna B"},
		{"x", "y"},
		{"z", "w"},
	})

	result, err := uc.ImportPriceList(context.Background(), r, "")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 2, result.Errors)
}

// Hoja con solo encabezados: resultado vacío sin error.
func TestImportPriceList_SoloEncabezados(t *testing.T) {
	uc := NewImportUseCase(newMemProductRepo(), &memPriceRepo{})

	r := buildXLSX(t, [][]string{{"Part Code", "Price"}})

	result, err := uc.ImportPriceList(context.Background(), r, "")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
	assert.Equal(t, 0, result.Errors)
}

// Archivo que no es XLSX: error de entrada inválida.
func TestImportPriceList_ArchivoInvalido(t *testing.T) {
	uc := NewImportUseCase(newMemProductRepo(), &memPriceRepo{})

	_, err := uc.ImportPriceList(context.Background(), bytes.NewBufferString("no es un xlsx"), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
