package tui

import (
	"fmt"
	"strconv"
	"strings"

	"dkbudget/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// formValues holds the string-typed inputs behind the household form.
// huh binds to strings; parsing back into the scenario happens on
// completion.
type formValues struct {
	salary    [2]string
	union     [2]string
	commuteKM [2]string
	days      [2]string

	housePrice   string
	houseRate    string
	carPrice     string
	taxFreeExtra string
}

func amountField(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validAmount(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("skriv et tal")
	}
	if v < 0 {
		return fmt.Errorf("må ikke være negativt")
	}
	return nil
}

func validDays(s string) error {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("skriv et helt tal")
	}
	if d < 0 || d > 365 {
		return fmt.Errorf("0-365 dage")
	}
	return nil
}

// startForm opens the household editing form seeded from the current
// scenario.
func (a App) startForm() (tea.Model, tea.Cmd) {
	h := a.household
	// Shared via pointer: the form binds to these strings and App is
	// copied on every Update.
	a.formVals = &formValues{
		salary:    [2]string{amountField(h.Spouses[0].MonthlySalary), amountField(h.Spouses[1].MonthlySalary)},
		union:     [2]string{amountField(h.Spouses[0].AnnualUnionFee), amountField(h.Spouses[1].AnnualUnionFee)},
		commuteKM: [2]string{amountField(h.Spouses[0].Commute.DistanceKM), amountField(h.Spouses[1].Commute.DistanceKM)},
		days:      [2]string{strconv.Itoa(h.Spouses[0].Commute.DaysPerYear), strconv.Itoa(h.Spouses[1].Commute.DaysPerYear)},

		housePrice:   amountField(h.Housing.PurchasePrice),
		houseRate:    amountField(h.Housing.AnnualRatePct),
		carPrice:     amountField(h.Car.Price),
		taxFreeExtra: amountField(h.MonthlyTaxFreeExtra),
	}

	groups := make([]*huh.Group, 0, 3)
	for i := range h.Spouses {
		name := h.Spouses[i].Name
		if name == "" {
			name = fmt.Sprintf("Person %d", i+1)
		}
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(name+": månedsløn (kr.)").
				Validate(validAmount).
				Value(&a.formVals.salary[i]),
			huh.NewInput().
				Title(name+": fagforening pr. år (kr.)").
				Validate(validAmount).
				Value(&a.formVals.union[i]),
			huh.NewInput().
				Title(name+": afstand til arbejde (km én vej)").
				Validate(validAmount).
				Value(&a.formVals.commuteKM[i]),
			huh.NewInput().
				Title(name+": pendlerdage pr. år").
				Validate(validDays).
				Value(&a.formVals.days[i]),
		))
	}
	groups = append(groups, huh.NewGroup(
		huh.NewInput().
			Title("Boligpris (kr.)").
			Validate(validAmount).
			Value(&a.formVals.housePrice),
		huh.NewInput().
			Title("Boligrente (% pr. år)").
			Validate(validAmount).
			Value(&a.formVals.houseRate),
		huh.NewInput().
			Title("Bilpris (kr.)").
			Validate(validAmount).
			Value(&a.formVals.carPrice),
		huh.NewInput().
			Title("Andre skattefri indtægter pr. måned (kr.)").
			Validate(validAmount).
			Value(&a.formVals.taxFreeExtra),
	))

	a.form = huh.NewForm(groups...)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

// household applies the parsed form values on top of the current scenario.
func (v formValues) household(base model.Household) (model.Household, error) {
	h := base

	parse := func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}

	for i := range h.Spouses {
		var err error
		if h.Spouses[i].MonthlySalary, err = parse(v.salary[i]); err != nil {
			return base, err
		}
		if h.Spouses[i].AnnualUnionFee, err = parse(v.union[i]); err != nil {
			return base, err
		}
		if h.Spouses[i].Commute.DistanceKM, err = parse(v.commuteKM[i]); err != nil {
			return base, err
		}
		if h.Spouses[i].Commute.DaysPerYear, err = strconv.Atoi(strings.TrimSpace(v.days[i])); err != nil {
			return base, err
		}
	}

	var err error
	if h.Housing.PurchasePrice, err = parse(v.housePrice); err != nil {
		return base, err
	}
	if h.Housing.AnnualRatePct, err = parse(v.houseRate); err != nil {
		return base, err
	}
	if h.Car.Price, err = parse(v.carPrice); err != nil {
		return base, err
	}
	if h.MonthlyTaxFreeExtra, err = parse(v.taxFreeExtra); err != nil {
		return base, err
	}

	if err := h.Validate(); err != nil {
		return base, err
	}
	return h, nil
}
