package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// LogResponse representación HTTP de un registro de auditoría.
type LogResponse struct {
	ID           string    `json:"id"`
	MaterialCode string    `json:"materialCode"`
	Action       string    `json:"action"`
	Quantity     int64     `json:"quantity"`
	Rack         string    `json:"rack"`
	Bin          string    `json:"bin"`
	BalanceQty   int64     `json:"balanceQty"`
	EnteredBy    string    `json:"enteredBy,omitempty"`
	IssuedBy     string    `json:"issuedBy,omitempty"`
	UserID       string    `json:"userId,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewLogResponse mapea la entidad a su DTO.
func NewLogResponse(l *entity.MovementLog) LogResponse {
	return LogResponse{
		ID:           l.ID,
		MaterialCode: l.MaterialCode,
		Action:       l.Action,
		Quantity:     l.Quantity,
		Rack:         l.Rack,
		Bin:          l.Bin,
		BalanceQty:   l.BalanceQty,
		EnteredBy:    l.EnteredBy,
		IssuedBy:     l.IssuedBy,
		UserID:       l.UserID,
		Timestamp:    l.CreatedAt,
	}
}

// NewLogListResponse mapea una lista de logs (slice vacío, nunca nil).
func NewLogListResponse(list []*entity.MovementLog) []LogResponse {
	out := make([]LogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, NewLogResponse(l))
	}
	return out
}

// BinTransactionResponse representación HTTP de una transacción de ubicación.
type BinTransactionResponse struct {
	ID           string    `json:"id"`
	MaterialCode string    `json:"materialCode"`
	BinLocation  string    `json:"binLocation"`
	ReceivedQty  int64     `json:"receivedQty"`
	IssuedQty    int64     `json:"issuedQty"`
	BalanceQty   int64     `json:"balanceQty"`
	PersonName   string    `json:"personName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewBinTransactionListResponse mapea una lista de transacciones (slice vacío, nunca nil).
func NewBinTransactionListResponse(list []*entity.BinTransaction) []BinTransactionResponse {
	out := make([]BinTransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, BinTransactionResponse{
			ID:           t.ID,
			MaterialCode: t.MaterialCode,
			BinLocation:  t.BinLocation,
			ReceivedQty:  t.ReceivedQty,
			IssuedQty:    t.IssuedQty,
			BalanceQty:   t.BalanceQty,
			PersonName:   t.PersonName,
			CreatedAt:    t.CreatedAt,
		})
	}
	return out
}
