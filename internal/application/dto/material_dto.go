package dto

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// MaterialResponse representación HTTP de un material.
type MaterialResponse struct {
	Code        string    `json:"code"`
	Quantity    int64     `json:"quantity"`
	Rack        string    `json:"rack"`
	Bin         string    `json:"bin"`
	LastUpdated time.Time `json:"last_updated"`
}

// NewMaterialResponse mapea la entidad a su DTO.
func NewMaterialResponse(m *entity.Material) MaterialResponse {
	return MaterialResponse{
		Code:        m.Code,
		Quantity:    m.Quantity,
		Rack:        m.Rack,
		Bin:         m.Bin,
		LastUpdated: m.LastUpdated,
	}
}

// NewMaterialListResponse mapea una lista de materiales. Devuelve slice vacío,
// nunca nil, para que el JSON sea [] y no null.
func NewMaterialListResponse(list []*entity.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, NewMaterialResponse(m))
	}
	return out
}
