package telegram

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatPriceAlert formats a fired alert as a Markdown message for
// Telegram, mirroring the Discord embed content.
func FormatPriceAlert(kind, companyName string, currentPrice, baselinePrice, percentChange float64) string {
	marker := "📉"
	if kind == "GAIN" {
		marker = "📈"
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("%s *Stock Alert: %s*\n\n", marker, companyName))
	builder.WriteString(fmt.Sprintf("*%s Alert Triggered!*\n", kind))
	builder.WriteString(fmt.Sprintf("💰 *Current Price:* ₹%s\n", humanize.CommafWithDigits(currentPrice, 2)))
	builder.WriteString(fmt.Sprintf("📌 *Baseline Price:* ₹%s\n", humanize.CommafWithDigits(baselinePrice, 2)))
	builder.WriteString(fmt.Sprintf("🔔 *Change:* %+.2f%%\n", percentChange))
	return builder.String()
}
