// Package dto defines data transfer objects for the comparison HTTP API.
package dto

// ComparisonResponse は2銘柄比較のレスポンスDTOです。
type ComparisonResponse struct {
	Symbol1     string        `json:"symbol1"`
	Symbol2     string        `json:"symbol2"`
	StartDate   string        `json:"start_date"` // YYYY-MM-DD (初年の12月31日)
	EndDate     string        `json:"end_date"`   // YYYY-MM-DD (最終年の12月31日)
	FinalValue1 float64       `json:"final_value1"`
	FinalValue2 float64       `json:"final_value2"`
	Message     string        `json:"message"`
	Chart       ChartData     `json:"chart"`
	Table       []RowResponse `json:"table"`
}

// ChartData はグラフ描画用の系列です。Labels と各系列は同じ長さです。
type ChartData struct {
	Labels  []int     `json:"labels"` // 年
	Series1 []float64 `json:"series1"`
	Series2 []float64 `json:"series2"`
}

// RowResponse は比較テーブルの1年分の行です。
// 初年度の騰落率は前年が存在しないため null になります。
type RowResponse struct {
	Year        int      `json:"year"`
	Value1      float64  `json:"value1"`
	Return1     *float64 `json:"return1"`
	Value2      float64  `json:"value2"`
	Return2     *float64 `json:"return2"`
	Cumulative1 float64  `json:"cumulative1"`
	Cumulative2 float64  `json:"cumulative2"`
}

// ErrorResponse はエラー時のレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}
