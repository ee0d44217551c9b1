package database

import (
	"fmt"
	"sort"
	"time"

	"girvi-backend/internal/ledger"
	"girvi-backend/internal/models"

	"gorm.io/gorm"
)

// DashboardMetrics is the aggregate snapshot the admin dashboard polls.
// Always computed from the live non-removed rows; never cached here.
type DashboardMetrics struct {
	TotalCustomers  int64          `json:"total_customers"`
	TotalSales      float64        `json:"total_sales"`
	TotalStockValue float64        `json:"total_stock_value"`
	TotalRawWeight  float64        `json:"total_raw_weight"`
	MonthlySales    []MonthlyTotal `json:"monthly_sales"`
}

// MonthlyTotal is one calendar month's sales sum.
type MonthlyTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// GetDashboardMetrics computes the dashboard aggregates. Soft-deleted
// rows are excluded by gorm's default scope.
func GetDashboardMetrics(db *gorm.DB) (*DashboardMetrics, error) {
	var m DashboardMetrics

	if err := db.Model(&models.Customer{}).Count(&m.TotalCustomers).Error; err != nil {
		return nil, err
	}

	// COALESCE ensures we get 0 instead of NULL when no rows exist
	if err := db.Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&m.TotalSales).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.Stock{}).
		Select("COALESCE(SUM(total_value), 0)").
		Scan(&m.TotalStockValue).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.RawMaterial{}).
		Select("COALESCE(SUM(weight), 0)").
		Scan(&m.TotalRawWeight).Error; err != nil {
		return nil, err
	}

	monthly, err := monthlySales(db)
	if err != nil {
		return nil, err
	}
	m.MonthlySales = monthly

	return &m, nil
}

type saleRow struct {
	SaleDate    time.Time
	TotalAmount float64
}

// monthlySales groups live sale totals by calendar year/month. The
// grouping runs in Go so the same query works on MySQL and sqlite.
func monthlySales(db *gorm.DB) ([]MonthlyTotal, error) {
	var rows []saleRow
	if err := db.Model(&models.Sale{}).
		Select("sale_date, total_amount").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string][]float64)
	for _, r := range rows {
		d := r.SaleDate.UTC()
		k := fmt.Sprintf("%04d-%02d", d.Year(), int(d.Month()))
		buckets[k] = append(buckets[k], r.TotalAmount)
	}

	totals := make([]MonthlyTotal, 0, len(buckets))
	for k, amounts := range buckets {
		var y, mo int
		fmt.Sscanf(k, "%d-%d", &y, &mo)
		totals = append(totals, MonthlyTotal{
			Year:  y,
			Month: mo,
			Total: ledger.SumAmounts(amounts),
		})
	}

	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Year != totals[j].Year {
			return totals[i].Year < totals[j].Year
		}
		return totals[i].Month < totals[j].Month
	})
	return totals, nil
}
