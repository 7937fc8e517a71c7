package logsheet

import (
	"fmt"
	"strings"

	"eld_logbook/internal/engine"
	"eld_logbook/internal/models"
	"eld_logbook/internal/timeutil"
)

const labelWidth = 26

// RenderText renders one daily log as a plain-text Driver's Daily Log
// sheet: header, trip info, the 4-row 24-hour grid, the totals block,
// the recap block and the remarks list. It consumes only the computed
// DailyLog and its grid.
func RenderText(lg models.DailyLog) string {
	var b strings.Builder

	b.WriteString("Driver's Daily Log (24 hours)\n")
	if day, err := lg.Day(); err == nil {
		fmt.Fprintf(&b, "Date: %s\n", timeutil.FormatDate(day))
	} else {
		fmt.Fprintf(&b, "Date: %s\n", lg.Date)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "From: %s\n", orNA(lg.From))
	fmt.Fprintf(&b, "To: %s\n", orNA(lg.To))
	fmt.Fprintf(&b, "Total Miles Driving Today: %.1f\n", lg.TotalMilesDriving)
	fmt.Fprintf(&b, "Total Mileage Today: %.1f\n", lg.TotalMileage)
	b.WriteString("\n")

	writeGrid(&b, lg)
	b.WriteString("\n")

	b.WriteString("Total Hours\n")
	for _, s := range models.FormRowOrder {
		fmt.Fprintf(&b, "  %-*s %6.2f\n", labelWidth, Label(s)+":", lg.Totals.ForStatus(s))
	}
	fmt.Fprintf(&b, "  %-*s %6.2f\n", labelWidth, "Total On Duty (3 & 4):", lg.Totals.TotalOnDuty)
	b.WriteString("\n")

	b.WriteString("Recap: 70 Hour / 8 Day Drivers\n")
	fmt.Fprintf(&b, "  On duty hours today:                       %6.2f\n", lg.Totals.TotalOnDuty)
	fmt.Fprintf(&b, "  A. On duty last 7 days including today:    %6.2f\n", lg.Recap.TotalOnDutyLast7Days)
	fmt.Fprintf(&b, "  B. Hours available tomorrow (70 - A):      %6.2f\n", lg.Recap.HoursAvailableTomorrow70Hr)
	fmt.Fprintf(&b, "  C. On duty last 5 days including today:    %6.2f\n", lg.Recap.TotalOnDutyLast5Days)
	b.WriteString("\n")

	b.WriteString("Remarks\n")
	remarks := Remarks(lg)
	if len(remarks) == 0 {
		b.WriteString("  No remarks\n")
	}
	for _, r := range remarks {
		fmt.Fprintf(&b, "  %s\n", r)
	}

	return b.String()
}

// writeGrid writes the hour ruler and the four status rows, one
// character per 15-minute slot, with each row's hour total at the end.
func writeGrid(b *strings.Builder, lg models.DailyLog) {
	fmt.Fprintf(b, "%-*s ", labelWidth, "")
	for h := 0; h < 24; h++ {
		fmt.Fprintf(b, "%-4s", hourLabel(h))
	}
	b.WriteString("Total\n")

	grid := BuildGrid(lg)
	for _, row := range grid {
		fmt.Fprintf(b, "%-*s ", labelWidth, Label(row.Status))
		for slot := 0; slot < engine.SlotsPerDay; slot++ {
			if row.Cells[slot] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		fmt.Fprintf(b, " %5.2f\n", lg.Totals.ForStatus(row.Status))
	}
}

// hourLabel matches the form's ruler: midnight and noon are named.
func hourLabel(h int) string {
	switch {
	case h == 0:
		return "Mid"
	case h == 12:
		return "Noon"
	case h > 12:
		return fmt.Sprintf("%d", h-12)
	default:
		return fmt.Sprintf("%d", h)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
