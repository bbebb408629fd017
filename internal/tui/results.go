package tui

import (
	"fmt"
	"strings"

	"dkbudget/internal/cli"
	"dkbudget/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) viewTooNarrow() string {
	return fmt.Sprintf(
		"\n  Terminalen er for smal (%d kolonner)\n\n  dkbudget kræver mindst %d kolonner.\n",
		a.width, minTerminalWidth)
}

func (a App) viewHelp() string {
	t := theme.Active
	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	key := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	rows := []struct{ k, desc string }{
		{"o / p / u / x", "skift til oversigt / personer / udgifter / indstillinger"},
		{"←/→, h/l, tab", "bladr mellem faner"},
		{"e", "redigér husstanden"},
		{"j/k", "flyt markør (indstillinger)"},
		{"enter", "redigér valgt felt (indstillinger)"},
		{"?", "vis/skjul denne hjælp"},
		{"q / ctrl+c", "afslut"},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render("  Taster"))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			key.Render(fmt.Sprintf("%-14s", r.k)),
			label.Render(r.desc)))
	}
	b.WriteString("\n")
	b.WriteString(label.Render("  Tryk en vilkårlig tast for at lukke"))
	return b.String()
}

func (a App) viewMain() string {
	var b strings.Builder
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")

	if a.computeErr != nil {
		t := theme.Active
		errStyle := lipgloss.NewStyle().Foreground(t.Red)
		b.WriteString(errStyle.Render("  Ugyldigt scenarie: " + a.computeErr.Error()))
		b.WriteString("\n")
		return b.String()
	}

	switch a.activePane {
	case paneOverview:
		b.WriteString(a.renderOverview())
	case paneSpouses:
		b.WriteString(a.renderSpouses())
	case paneExpenses:
		b.WriteString(a.renderExpenses())
	case paneSettings:
		b.WriteString(a.renderSettings())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderTabBar() string {
	t := theme.Active
	active := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true).
		Padding(0, 2)
	inactive := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	parts := make([]string, len(paneNames))
	for i, name := range paneNames {
		if i == a.activePane {
			parts[i] = active.Render(name)
		} else {
			parts[i] = inactive.Render(name)
		}
	}
	return " " + strings.Join(parts, " ")
}

func (a App) renderStatusBar() string {
	t := theme.Active
	return lipgloss.NewStyle().Foreground(t.TextDim).
		Render("  [e] redigér  [←/→] faner  [?] hjælp  [q] afslut")
}

// card renders a titled bordered box in the active theme.
func card(title, body string, width int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width)

	return boxStyle.Render(titleStyle.Render(title) + "\n" + body)
}

func (a App) cardWidth() int {
	w := a.width - 4
	if w > 64 {
		w = 64
	}
	return w
}

func kvLine(label, value string, width int) string {
	t := theme.Active
	l := lipgloss.NewStyle().Foreground(t.TextMuted).Render(label)
	v := lipgloss.NewStyle().Foreground(t.TextPrimary).Render(value)
	pad := width - 4 - lipgloss.Width(l) - lipgloss.Width(v)
	if pad < 1 {
		pad = 1
	}
	return l + strings.Repeat(" ", pad) + v
}

func (a App) renderOverview() string {
	t := theme.Active
	res := a.res
	cw := a.cardWidth()

	var income strings.Builder
	for _, s := range res.Spouses {
		income.WriteString(kvLine(s.Name+" netto/md", cli.FormatDKK(s.MonthlyNet), cw))
		income.WriteString("\n")
	}
	income.WriteString(kvLine("Børnepenge", cli.FormatDKK(res.ChildBenefitMonthly), cw))
	income.WriteString("\n")
	income.WriteString(kvLine("Andre skattefri", cli.FormatDKK(res.OtherTaxFreeMonthly), cw))
	income.WriteString("\n")
	income.WriteString(kvLine("Husstand netto/md", cli.FormatDKK(res.CombinedMonthlyNet), cw))

	var out strings.Builder
	out.WriteString(card("Indkomst", income.String(), cw))
	out.WriteString("\n")

	var costs strings.Builder
	costs.WriteString(kvLine("Bolig/md", cli.FormatDKK(res.Housing.MonthlyTotal), cw))
	costs.WriteString("\n")
	costs.WriteString(kvLine("Bil/md", cli.FormatDKK(res.Car.MonthlyTotal), cw))
	costs.WriteString("\n")
	costs.WriteString(kvLine("Faste udgifter i alt/md", cli.FormatDKK(res.TotalExpensesMonthly), cw))
	out.WriteString(card("Udgifter", costs.String(), cw))
	out.WriteString("\n")

	dispStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	if res.DisposableMonthly < 0 {
		dispStyle = dispStyle.Foreground(t.Red)
	}
	out.WriteString(card("Rådighedsbeløb",
		kvLine("Pr. måned", dispStyle.Render(cli.FormatDKK(res.DisposableMonthly)), cw), cw))

	return out.String()
}

func (a App) renderSpouses() string {
	cw := a.cardWidth()
	var out strings.Builder

	for _, s := range a.res.Spouses {
		var b strings.Builder
		b.WriteString(kvLine("Lønindkomst pr. år", cli.FormatDKK(s.EmploymentIncome), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("AM-bidrag", cli.FormatDKK(s.AMContribution), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Beskæftigelsesfradrag", cli.FormatDKK(s.EmploymentDeduction), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Kørselsfradrag", cli.FormatDKK(s.CommuteDeduction), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Rentefradrag", cli.FormatDKK(s.MortgageInterest), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Personfradrag (effektivt)", cli.FormatDKK(s.EffectiveAllowance), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Skattegrundlag", cli.FormatDKK(s.TaxableBase), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Skat i alt", cli.FormatDKK(s.TotalTax), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Netto pr. måned", cli.FormatDKK(s.MonthlyNet), cw))
		b.WriteString("\n")
		b.WriteString(kvLine("Effektiv skatteprocent", cli.FormatPercent(s.EffectiveTaxRate), cw))

		out.WriteString(card(s.Name, b.String(), cw))
		out.WriteString("\n")
	}

	return out.String()
}

func (a App) renderExpenses() string {
	cw := a.cardWidth()
	res := a.res

	var max float64
	for _, e := range res.Expenses {
		if e.Monthly > max {
			max = e.Monthly
		}
	}

	var b strings.Builder
	for _, e := range res.Expenses {
		b.WriteString(kvLine(e.Label, cli.FormatDKK(e.Monthly), cw))
		b.WriteString("\n")
		b.WriteString(cli.RenderHorizontalBar("", e.Monthly, max, cw-34))
		b.WriteString("\n")
	}
	b.WriteString(kvLine("I alt", cli.FormatDKK(res.TotalExpensesMonthly), cw))

	return card("Faste udgifter pr. måned", b.String(), cw)
}
