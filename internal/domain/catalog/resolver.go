package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// Resolver índice inmutable del catálogo: producto por ID y producto canónico por código.
// Se construye una vez por snapshot; es seguro para lectura concurrente.
type Resolver struct {
	byID   map[string]entity.Product
	byCode map[Code]entity.Product
}

// Option producto estándar ofrecido en formularios (uno por código).
type Option struct {
	ID       string
	Code     Code
	Label    string
	WeightKG decimal.Decimal
}

// NewResolver indexa los productos. El orden de entrada importa: ante empate de puntaje
// gana el primero, por eso el almacén los entrega ordenados por nombre.
func NewResolver(products []entity.Product) *Resolver {
	r := &Resolver{
		byID:   make(map[string]entity.Product, len(products)),
		byCode: make(map[Code]entity.Product, len(StandardCodes)),
	}
	for _, p := range products {
		r.byID[p.ID] = p
		code, ok := ParseCode(p.Code)
		if !ok {
			continue
		}
		existing, seen := r.byCode[code]
		if !seen || Score(p) > Score(existing) {
			r.byCode[code] = p
		}
	}
	return r
}

// ProductForCode devuelve el producto canónico elegido para el código.
func (r *Resolver) ProductForCode(code Code) (entity.Product, bool) {
	p, ok := r.byCode[code]
	return p, ok
}

// CodeForProduct resuelve el ID de producto a su código canónico; false si es no estándar o desconocido.
func (r *Resolver) CodeForProduct(productID string) (Code, bool) {
	p, ok := r.byID[productID]
	if !ok {
		return "", false
	}
	return ParseCode(p.Code)
}

// Product busca un producto por ID (incluye no estándar).
func (r *Resolver) Product(productID string) (entity.Product, bool) {
	p, ok := r.byID[productID]
	return p, ok
}

// WeightForProduct peso por paquete del producto, o el estándar si no lo tiene o no existe.
func (r *Resolver) WeightForProduct(productID string) decimal.Decimal {
	return WeightOrStandard(r.byID[productID].WeightKG)
}

// WeightForCode peso del producto canónico del código (estándar si no hay catálogo).
func (r *Resolver) WeightForCode(code Code) decimal.Decimal {
	return WeightOrStandard(r.byCode[code].WeightKG)
}

// CodeLabel etiqueta del código usando el peso del producto canónico.
func (r *Resolver) CodeLabel(code Code, compact bool) string {
	return Label(code, r.WeightForCode(code), compact)
}

// ProductLabel etiqueta para listados crudos: estándar → etiqueta canónica con su peso;
// no estándar → su nombre; desconocido → "Producto".
func (r *Resolver) ProductLabel(productID string) string {
	p, ok := r.byID[productID]
	if !ok {
		return fallbackLabel
	}
	if code, ok := ParseCode(p.Code); ok {
		return Label(code, WeightOrStandard(p.WeightKG), false)
	}
	if p.Name == "" {
		return fallbackLabel
	}
	return p.Name
}

// Options productos estándar disponibles, FR y luego CA; omite códigos sin producto.
func (r *Resolver) Options() []Option {
	out := make([]Option, 0, len(StandardCodes))
	for _, code := range StandardCodes {
		p, ok := r.byCode[code]
		if !ok {
			continue
		}
		w := WeightOrStandard(p.WeightKG)
		out = append(out, Option{
			ID:       p.ID,
			Code:     code,
			Label:    Label(code, w, true),
			WeightKG: w,
		})
	}
	return out
}
