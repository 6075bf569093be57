// Package cmd wires the joyrelay command line.
package cmd

// CLI is the root command structure parsed by kong.
type CLI struct {
	Send    Send          `cmd:"" help:"Read joystick events and relay them over UDP."`
	Receive Receive       `cmd:"" help:"Receive joystick events and drive a virtual gamepad."`
	Config  ConfigCommand `cmd:"" help:"Configuration helpers."`
	Version Version       `cmd:"" help:"Show joyrelay version."`

	ConfigPath string    `name:"config" help:"Path to a configuration file." type:"path" env:"JOYRELAY_CONFIG"`
	Log        LogConfig `embed:"" prefix:"log."`
}

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level   string `help:"Log level." enum:"trace,debug,info,warn,error" default:"info" env:"JOYRELAY_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console." type:"path"`
	RawFile string `help:"Write a hex dump of every datagram to this file." name:"raw-file" type:"path"`
}
