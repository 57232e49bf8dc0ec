// Command hero previews the portfolio's typewriter hero in the terminal,
// using the same content and timing settings as the web server.
package main

import (
	"fmt"
	"os"

	"github.com/Zachkp/cloud-portfolio/config"
	"github.com/Zachkp/cloud-portfolio/content"
	"github.com/Zachkp/cloud-portfolio/typewriter"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hero:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	machine, err := typewriter.NewMachine(site.Profile.HeroPhrases, cfg.HeroTypeInterval, cfg.HeroHold)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newModel(machine, site.Profile), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
