package tui

import (
	"fmt"
	"strconv"
	"strings"

	"dkbudget/internal/config"
	"dkbudget/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldMunicipal
	settingsFieldChurch
	settingsFieldBottom
	settingsFieldTop
	settingsFieldThreshold
	settingsFieldAllowance
	settingsFieldCount // sentinel
)

// settingsState tracks the settings pane state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // flash "saved" message briefly
	saveErr error // non-nil if last save failed
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 32
	ti.Width = 30
	return ti
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()

	switch a.settings.cursor {
	case settingsFieldTheme:
		names := make([]string, len(theme.All))
		for i, t := range theme.All {
			names[i] = t.Name
		}
		ti.Placeholder = strings.Join(names, ", ")
		ti.SetValue(a.cfg.Appearance.Theme)
	case settingsFieldMunicipal:
		ti.Placeholder = "24.5"
		ti.SetValue(formatPct(a.rates.MunicipalRate))
	case settingsFieldChurch:
		ti.Placeholder = "0.7 (0 uden medlemskab)"
		ti.SetValue(formatPct(a.rates.ChurchRate))
	case settingsFieldBottom:
		ti.Placeholder = "12.09"
		ti.SetValue(formatPct(a.rates.BottomRate))
	case settingsFieldTop:
		ti.Placeholder = "15"
		ti.SetValue(formatPct(a.rates.TopRate))
	case settingsFieldThreshold:
		ti.Placeholder = "618400"
		ti.SetValue(strconv.FormatFloat(a.rates.TopTaxThreshold, 'f', 0, 64))
	case settingsFieldAllowance:
		ti.Placeholder = "48000"
		ti.SetValue(strconv.FormatFloat(a.rates.PersonalAllowance, 'f', 0, 64))
	}

	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func formatPct(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', -1, 64)
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		a.settings.saved = a.settings.saveErr == nil
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) settingsSave() {
	val := strings.TrimSpace(a.settings.input.Value())

	parsePct := func() (float64, bool) {
		var p float64
		if _, err := fmt.Sscanf(val, "%f", &p); err != nil || p < 0 {
			return 0, false
		}
		return p / 100, true
	}
	parseDKK := func() (float64, bool) {
		var v float64
		if _, err := fmt.Sscanf(val, "%f", &v); err != nil || v < 0 {
			return 0, false
		}
		return v, true
	}

	switch a.settings.cursor {
	case settingsFieldTheme:
		for _, t := range theme.All {
			if t.Name == val {
				a.cfg.Appearance.Theme = val
				theme.SetActive(val)
				break
			}
		}
	case settingsFieldMunicipal:
		if p, ok := parsePct(); ok {
			a.cfg.Rates.MunicipalRate = &p
		}
	case settingsFieldChurch:
		if p, ok := parsePct(); ok {
			a.cfg.Rates.ChurchRate = &p
		}
	case settingsFieldBottom:
		if p, ok := parsePct(); ok {
			a.cfg.Rates.BottomRate = &p
		}
	case settingsFieldTop:
		if p, ok := parsePct(); ok {
			a.cfg.Rates.TopRate = &p
		}
	case settingsFieldThreshold:
		if v, ok := parseDKK(); ok {
			a.cfg.Rates.TopTaxThreshold = &v
		}
	case settingsFieldAllowance:
		if v, ok := parseDKK(); ok {
			a.cfg.Rates.PersonalAllowance = &v
		}
	}

	a.rates = config.EffectiveRates(a.cfg)
	a.recompute()
	a.settings.saveErr = config.Save(a.cfg)
}

func (a App) renderSettings() string {
	t := theme.Active
	cw := a.cardWidth()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.Accent)

	fields := []struct {
		label string
		value string
	}{
		{"Tema", a.cfg.Appearance.Theme},
		{"Kommuneskat", fmt.Sprintf("%.2f%%", a.rates.MunicipalRate*100)},
		{"Kirkeskat", fmt.Sprintf("%.2f%%", a.rates.ChurchRate*100)},
		{"Bundskat", fmt.Sprintf("%.2f%%", a.rates.BottomRate*100)},
		{"Topskat", fmt.Sprintf("%.2f%%", a.rates.TopRate*100)},
		{"Topskattegrænse", fmt.Sprintf("%.0f kr.", a.rates.TopTaxThreshold)},
		{"Personfradrag", fmt.Sprintf("%.0f kr.", a.rates.PersonalAllowance)},
	}

	var b strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			b.WriteString(a.settings.input.View())
			b.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			b.WriteString(markerStyle.Render("▸ "))
			b.WriteString(selectedStyle.Render(fmt.Sprintf("%-18s %s", f.label+":", f.value)))
		} else {
			b.WriteString("  ")
			b.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			b.WriteString(valueStyle.Render(f.value))
		}
		b.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warn := lipgloss.NewStyle().Foreground(t.Yellow)
		b.WriteString("\n")
		b.WriteString(warn.Render("Kunne ikke gemme: " + a.settings.saveErr.Error()))
	} else if a.settings.saved {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Render("Gemt!"))
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("[j/k] vælg  [Enter] redigér  [Esc] fortryd"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Konfigurationsfil: ") + valueStyle.Render(config.Path()))

	return card("Satser og udseende", b.String(), cw)
}
