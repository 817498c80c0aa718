package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/mdsite/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Directory to place the generated config file in"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfgPath := root.Config
	if i.Output != "" {
		cfgPath = filepath.Join(i.Output, "config.yaml")
	}
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}
	fmt.Printf("Wrote starter configuration to %s\n", cfgPath)
	return nil
}
