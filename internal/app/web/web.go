// Package web はHTMLテンプレートを埋め込み、gin用に読み込みます。
package web

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Funcs はテンプレートから利用できる書式関数です。
var Funcs = template.FuncMap{
	"money":     money,
	"percent":   percent,
	"exchanges": func() []string { return Exchanges },
}

// Exchanges はフォームで選択できる取引所です。
var Exchanges = []string{"NASDAQ", "NYSE", "NYSE ARCA", "NYSE MKT", "BATS"}

// Templates は埋め込まれた index.html と result.html を解析して返します。
func Templates() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(templatesFS, "templates/*.html")
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// percent は騰落率を表示します。nil（初年度）は "-" になります。
func percent(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f%%", *p)
}
