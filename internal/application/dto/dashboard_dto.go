package dto

// DashboardStatsDTO resumen del día para el dashboard.
// Siempre se calcula fresco contra el store; nunca se cachea.
type DashboardStatsDTO struct {
	TotalMaterials int64         `json:"totalMaterials"`
	EnteredToday   int64         `json:"enteredToday"`
	IssuedToday    int64         `json:"issuedToday"`
	RecentLogs     []LogResponse `json:"recentLogs"`
}
