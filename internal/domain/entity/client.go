package entity

import "time"

// Client representa un cliente destino de los envíos.
type Client struct {
	ID        string
	Name      string
	CreatedAt *time.Time
}
