package get_top_customers

import (
	topCustomers "github.com/avlasova/GCA-SchedulingService/internal/usecase/top_customers"
)

// RankingEntryResponse одно место рейтинга
type RankingEntryResponse struct {
	Place        int    `json:"place"`
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	TotalMinutes int64  `json:"totalMinutes"`
}

// RankingResponse HTTP response model с рейтингом клиентов месяца.
// Незанятые места в ответ не включаются.
type RankingResponse struct {
	Ranking []RankingEntryResponse `json:"ranking"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *topCustomers.Response) *RankingResponse {
	result := &RankingResponse{
		Ranking: make([]RankingEntryResponse, 0, len(resp.Ranking)),
	}

	for place, entry := range resp.Ranking {
		if entry == nil {
			continue
		}
		result.Ranking = append(result.Ranking, RankingEntryResponse{
			Place:        place + 1,
			CustomerID:   entry.Customer.ID,
			CustomerName: entry.Customer.Name,
			TotalMinutes: entry.TotalMinutes,
		})
	}

	return result
}
