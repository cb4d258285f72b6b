package system

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/natjohn/wellbee/internal/cli"
	"github.com/natjohn/wellbee/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	onboarded, err := ctx.Engine.Onboarded()
	if err != nil {
		return err
	}
	if !onboarded {
		fmt.Println("No profile yet. Run 'wellbee onboard' first.")
		return nil
	}

	// Perform automatic backup on dashboard startup
	ctx.PerformAutomaticBackup()

	p := tea.NewProgram(tui.NewModel(ctx.Engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
