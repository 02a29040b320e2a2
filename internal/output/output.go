// Package output persists an aggregated draw sequence to tabular files.
// Export failures are ordinary errors, not part of the fetch error taxonomy.
package output

import (
	"strings"

	"github.com/lotto-works/ssqfetch/pkg/models"
)

// columns is the fixed header row for tabular exports, one row per draw.
var columns = []string{
	"issue",
	"draw_date",
	"red_numbers",
	"blue_numbers",
	"sales",
	"pool_money",
	"prize_details",
	"details_link",
}

// row flattens one record into column order. Number lists are joined with
// spaces so the cells stay single-valued.
func row(r models.DrawRecord) []string {
	return []string{
		r.Issue,
		r.DrawDate,
		strings.Join(r.RedNumbers, " "),
		strings.Join(r.BlueNumbers, " "),
		r.Sales,
		r.PoolMoney,
		r.PrizeDetails,
		r.DetailsLink,
	}
}
