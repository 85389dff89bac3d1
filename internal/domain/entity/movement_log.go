package entity

import "time"

// Acciones válidas para MovementLog.
const (
	ActionEntry = "entry"
	ActionIssue = "issue"
)

// MovementLog registro de auditoría inmutable de una entrada o salida.
// BalanceQty es la cantidad total del material justo después de la mutación.
// MaterialCode no tiene FK: el material puede haberse eliminado y el log permanece.
type MovementLog struct {
	ID           string
	MaterialCode string
	Action       string // entry | issue
	Quantity     int64  // delta, siempre positivo
	Rack         string
	Bin          string
	BalanceQty   int64
	EnteredBy    string // actor en entradas (texto libre)
	IssuedBy     string // actor en salidas (texto libre)
	UserID       string // usuario autenticado que ejecutó la operación
	CreatedAt    time.Time
}
