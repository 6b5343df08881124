package entity

// ProductionEntry registro diario de producción (paquetes fabricados de un producto).
// Date se conserva como texto "YYYY-MM-DD" tal como lo entrega el almacén; el motor de
// agregación lo interpreta y descarta las filas con fecha malformada.
type ProductionEntry struct {
	ID        int64
	Date      string
	ProductID string
	Packages  int
	Notes     *string
}

// EventDate, EventProductID y EventPackages permiten agregar el registro como evento.
func (e ProductionEntry) EventDate() string      { return e.Date }
func (e ProductionEntry) EventProductID() string { return e.ProductID }
func (e ProductionEntry) EventPackages() int     { return e.Packages }
