package types

// Pagination représente les métadonnées de pagination sous leur forme
// canonique, quelle que soit la forme renvoyée par le backend.
type Pagination struct {
	TotalCount uint64 `json:"total_count"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"total_pages"`
}

// NewPagination recalcule systématiquement total_pages : les valeurs du
// backend sont parfois incohérentes avec la limite fixée par le contrôleur.
func NewPagination(total uint64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + uint64(limit) - 1) / uint64(limit))
	}
	if page <= 0 {
		page = 1
	}
	return Pagination{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
