package discord

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// buildAlertEmbed renders a fired alert as a Discord embed: green with an
// upward marker for gains, red with a downward marker for losses.
func buildAlertEmbed(alert Alert) embed {
	color := colorLoss
	marker := "📉"
	if alert.Kind == "GAIN" {
		color = colorGain
		marker = "📈"
	}

	return embed{
		Title:       fmt.Sprintf("%s Stock Alert: %s", marker, alert.CompanyName),
		Description: fmt.Sprintf("**%s Alert Triggered!**", alert.Kind),
		Color:       color,
		Fields: []embedField{
			{Name: "Current Price", Value: FormatPrice(alert.CurrentPrice), Inline: true},
			{Name: "Baseline Price", Value: FormatPrice(alert.BaselinePrice), Inline: true},
			{Name: "Change", Value: FormatPercent(alert.PercentChange), Inline: true},
		},
		Footer: &embedFooter{Text: fmt.Sprintf("Alert for %s", alert.UserEmail)},
	}
}

// FormatPrice renders a price with the currency prefix and thousands
// separators, e.g. "₹1,234.56".
func FormatPrice(price float64) string {
	return "₹" + humanize.CommafWithDigits(price, 2)
}

// FormatPercent renders a signed two-decimal percent, e.g. "+10.33%".
func FormatPercent(percent float64) string {
	return fmt.Sprintf("%+.2f%%", percent)
}
