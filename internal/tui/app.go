// Package tui provides the interactive Bubble Tea dashboard for dkbudget.
package tui

import (
	"dkbudget/internal/budget"
	"dkbudget/internal/config"
	"dkbudget/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Panes of the dashboard.
const (
	paneOverview = iota
	paneSpouses
	paneExpenses
	paneSettings
	paneCount // sentinel
)

var paneNames = []string{"Oversigt", "Personer", "Udgifter", "Indstillinger"}

// App is the root Bubble Tea model.
type App struct {
	cfg       config.Config
	rates     config.TaxRates
	household model.Household

	res        model.HouseholdResult
	computeErr error

	// UI state
	width      int
	height     int
	activePane int
	showHelp   bool

	// Household editing (huh form)
	form     *huh.Form
	formVals *formValues

	// Settings pane state
	settings settingsState
}

const minTerminalWidth = 70

// NewApp creates the TUI model and runs the first computation.
func NewApp(cfg config.Config, household model.Household) App {
	a := App{
		cfg:       cfg,
		rates:     config.EffectiveRates(cfg),
		household: household,
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

func (a *App) recompute() {
	a.res, a.computeErr = budget.Compute(a.household, a.rates)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// Active household form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Settings editing has its own keybindings (text input)
		if a.activePane == paneSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		if a.activePane == paneSettings {
			switch key {
			case "j", "down":
				if a.settings.cursor < settingsFieldCount-1 {
					a.settings.cursor++
				}
				return a, nil
			case "k", "up":
				if a.settings.cursor > 0 {
					a.settings.cursor--
				}
				return a, nil
			case "enter":
				return a.settingsStartEdit()
			}
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "e":
			return a.startForm()
		case "o":
			a.activePane = paneOverview
		case "p":
			a.activePane = paneSpouses
		case "u":
			a.activePane = paneExpenses
		case "x":
			a.activePane = paneSettings
		case "left", "h":
			a.activePane = (a.activePane - 1 + paneCount) % paneCount
		case "right", "l", "tab":
			a.activePane = (a.activePane + 1) % paneCount
		}
		return a, nil
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}

	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateCompleted {
		if hh, err := a.formVals.household(a.household); err == nil {
			a.household = hh
			a.recompute()
		}
		a.form = nil
		return a, nil
	}

	if a.form.State == huh.StateAborted {
		a.form = nil
		return a, nil
	}

	return a, cmd
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.form.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}
