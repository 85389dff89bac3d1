package entity

import "time"

// Material representa un material del almacén identificado por su código.
// Quantity nunca es negativa; Rack/Bin reflejan la ubicación de la última entrada.
type Material struct {
	Code        string
	Quantity    int64
	Rack        string
	Bin         string
	LastUpdated time.Time
}
