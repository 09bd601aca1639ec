package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

func validatePositiveInt(field string) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return fmt.Errorf("%s must be a positive number", field)
		}
		return nil
	}
}

func newHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome do hábito").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("XP por conclusão").
				Value(&fm.XPValue).
				Validate(validatePositiveInt("XP value")),
		),
	).WithTheme(huh.ThemeDracula())
}

func newRewardForm(fm *RewardFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome da recompensa").
				Value(&fm.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("reward name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Descrição").
				Value(&fm.Description),
			huh.NewInput().
				Title("Custo em XP").
				Value(&fm.XPCost).
				Validate(validatePositiveInt("XP cost")),
		),
	).WithTheme(huh.ThemeDracula())
}
