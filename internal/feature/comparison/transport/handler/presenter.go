package handler

import (
	"fmt"
	"strings"

	"stock_compare/internal/feature/comparison/domain/entity"
	"stock_compare/internal/feature/comparison/transport/http/dto"
)

const dateLayout = "2006-01-02"

// investedAmount is the base value a growth series is normalized to.
const investedAmount = 100

// toResponse はComparisonをレスポンスDTOに変換します。
func toResponse(c *entity.Comparison) dto.ComparisonResponse {
	rows := c.Rows()
	out := dto.ComparisonResponse{
		Symbol1:     c.Symbol1,
		Symbol2:     c.Symbol2,
		StartDate:   c.StartDate().Format(dateLayout),
		EndDate:     c.EndDate().Format(dateLayout),
		FinalValue1: c.FinalValue1(),
		FinalValue2: c.FinalValue2(),
		Message:     comparisonMessage(c),
		Chart: dto.ChartData{
			Labels:  make([]int, 0, len(rows)),
			Series1: c.Growth1.Values(),
			Series2: c.Growth2.Values(),
		},
		Table: make([]dto.RowResponse, 0, len(rows)),
	}
	for _, r := range rows {
		out.Chart.Labels = append(out.Chart.Labels, r.Year)
		out.Table = append(out.Table, dto.RowResponse{
			Year:        r.Year,
			Value1:      r.Value1,
			Return1:     r.Return1,
			Value2:      r.Value2,
			Return2:     r.Return2,
			Cumulative1: r.Cumulative1,
			Cumulative2: r.Cumulative2,
		})
	}
	return out
}

// comparisonMessage は「$100を投資していたらいくらになったか」を銘柄ごとに1行で返します。
func comparisonMessage(c *entity.Comparison) string {
	start := c.StartDate().Format(dateLayout)
	end := c.EndDate().Format(dateLayout)
	lines := []string{
		fmt.Sprintf("On %s, $%d invested in %s would be worth $%.2f on %s.", start, investedAmount, c.Symbol1, c.FinalValue1(), end),
		fmt.Sprintf("On %s, $%d invested in %s would be worth $%.2f on %s.", start, investedAmount, c.Symbol2, c.FinalValue2(), end),
	}
	return strings.Join(lines, "\n")
}
