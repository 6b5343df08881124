package entity

// ShipmentEntry registro de envío de paquetes a un cliente.
type ShipmentEntry struct {
	ID        int64
	Date      string
	ProductID string
	ClientID  string
	Packages  int
	Notes     *string
}

func (e ShipmentEntry) EventDate() string      { return e.Date }
func (e ShipmentEntry) EventProductID() string { return e.ProductID }
func (e ShipmentEntry) EventPackages() int     { return e.Packages }
