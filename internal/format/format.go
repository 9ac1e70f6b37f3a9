// Package format renders numbers the way the dashboard shows them (pt-BR grouping).
package format

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Int groups thousands with dots: 2450 -> "2.450".
func Int(n int) string {
	return printer.Sprintf("%d", n)
}

// BRL formats a whole-real amount: 1280000 -> "R$ 1.280.000".
func BRL(amount float64) string {
	return "R$ " + printer.Sprintf("%d", int64(math.Round(amount)))
}

// BRLThousands is the chart axis label: 120000 -> "R$ 120K".
func BRLThousands(amount float64) string {
	return fmt.Sprintf("R$ %.0fK", amount/1000)
}

// Percent prints the shortest representation: 26.0 -> "26%", 40.8 -> "40.8%".
func Percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

// Decimal prints the shortest representation without a unit: 2.5 -> "2.5".
func Decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
