package entity

import "time"

// BinTransaction registro inmutable del libro mayor por ubicación (rack-bin).
// Exactamente uno de ReceivedQty/IssuedQty es distinto de cero por fila.
type BinTransaction struct {
	ID           string
	MaterialCode string
	BinLocation  string // compuesto "rack-bin"
	ReceivedQty  int64
	IssuedQty    int64
	BalanceQty   int64 // cantidad del material después de la transacción
	PersonName   string
	CreatedAt    time.Time
}
