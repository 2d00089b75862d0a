package commands

import (
	"flag"
	"io"
	"os"

	"github.com/validatedpatterns/reference-api/src/internal/config"
)

// ConfigCommand prints the effective configuration as TOML.
type ConfigCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
	out io.Writer
}

// CreateConfigCommand creates a new config command.
func CreateConfigCommand() *ConfigCommand {
	return &ConfigCommand{
		fs:  flag.NewFlagSet("config", flag.ContinueOnError),
		out: os.Stdout,
	}
}

func (c *ConfigCommand) Name() string {
	return c.fs.Name()
}

func (c *ConfigCommand) Init(args []string, ctx *AppContext) error {
	if err := c.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx)
	if err != nil {
		return err
	}
	c.cfg = cfg

	return nil
}

func (c *ConfigCommand) Run() error {
	buf, err := c.cfg.SerializeConfig()
	if err != nil {
		return err
	}
	_, err = buf.WriteTo(c.out)
	return err
}
