// Package commands implements the CLI sub-commands of reference-api.
//
// Every command implements Runner:
//   - Init(): parse arguments, load and validate configuration
//   - Run(): execute the command
//   - Name(): return the name used on the command line
//
// # Available Commands
//
//   - serve: run the HTTP API until SIGINT/SIGTERM
//   - config: print the effective configuration as TOML
//
// # Example Usage
//
//	cmd := commands.CreateServeCommand()
//	ctx := &commands.AppContext{ConfigPath: "/etc/reference-api.toml"}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package commands
