package services

import (
	"sort"
	"time"

	"github.com/Rakhulsr/go-catalog/app/models"
)

type InquiryStat struct {
	ProductID     string
	ProductName   string
	ImageURL      string
	Count         int
	LastInquiryAt time.Time
}

// RankInquiries groups inquiries by product in memory, most inquired first.
// Ties go to the most recent inquiry. Inquiries for products that no longer exist are dropped.
func RankInquiries(inquiries []models.ProductInquiry, products []models.Product) []InquiryStat {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	grouped := make(map[string]*InquiryStat)
	for _, inq := range inquiries {
		p, found := byID[inq.ProductID]
		if !found {
			continue
		}
		stat, ok := grouped[inq.ProductID]
		if !ok {
			stat = &InquiryStat{ProductID: inq.ProductID, ProductName: p.Name, ImageURL: p.ImageURL}
			grouped[inq.ProductID] = stat
		}
		stat.Count++
		if inq.CreatedAt.After(stat.LastInquiryAt) {
			stat.LastInquiryAt = inq.CreatedAt
		}
	}

	stats := make([]InquiryStat, 0, len(grouped))
	for _, s := range grouped {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		if !stats[i].LastInquiryAt.Equal(stats[j].LastInquiryAt) {
			return stats[i].LastInquiryAt.After(stats[j].LastInquiryAt)
		}
		return stats[i].ProductID < stats[j].ProductID
	})
	return stats
}

func uniqueProductIDs(inquiries []models.ProductInquiry) []string {
	seen := make(map[string]struct{}, len(inquiries))
	ids := make([]string, 0, len(inquiries))
	for _, inq := range inquiries {
		if _, ok := seen[inq.ProductID]; ok {
			continue
		}
		seen[inq.ProductID] = struct{}{}
		ids = append(ids, inq.ProductID)
	}
	return ids
}
