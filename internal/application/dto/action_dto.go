package dto

// EntryRequest body para POST /api/actions/entry.
// Los tags rack/bin validan el vocabulario de ubicaciones (letra+dígitos, dos dígitos).
type EntryRequest struct {
	MaterialCode string `json:"materialCode" validate:"required"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
	Rack         string `json:"rack" validate:"required,rack"`
	Bin          string `json:"bin" validate:"required,bin"`
	EnteredBy    string `json:"enteredBy,omitempty"`
}

// IssueRequest body para POST /api/actions/issue.
type IssueRequest struct {
	MaterialCode string `json:"materialCode" validate:"required"`
	Quantity     int64  `json:"quantity" validate:"required,gt=0"`
	Rack         string `json:"rack" validate:"required,rack"`
	Bin          string `json:"bin" validate:"required,bin"`
	IssuedBy     string `json:"issuedBy,omitempty"`
}
