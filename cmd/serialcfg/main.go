package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/modbuskit/serial"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:           "serialcfg",
		Short:         "Inspect serial endpoint configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newShowCmd(), newPortsCmd())

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newShowCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render a properties file as a resolved serial configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			props, err := serial.LoadProperties(args[0])
			if err != nil {
				return err
			}
			params, err := serial.NewParametersFromProperties(props, prefix)
			if err != nil {
				return err
			}

			if name := params.PortName(); name != "" && !serial.IsValidPortName(name) {
				log.Warn().Str("portName", name).Msg("port name does not look like a serial device")
			}

			fmt.Printf("portName:       %s\n", params.PortName())
			fmt.Printf("baudRate:       %s\n", params.BaudRateString())
			fmt.Printf("databits:       %s\n", params.DataBitsString())
			fmt.Printf("stopbits:       %s\n", params.StopBitsString())
			fmt.Printf("parity:         %s\n", params.ParityString())
			fmt.Printf("flowControlIn:  %s\n", params.FlowControlInString())
			fmt.Printf("flowControlOut: %s\n", params.FlowControlOutString())
			fmt.Printf("encoding:       %s\n", params.EncodingString())
			fmt.Printf("echo:           %t\n", params.Echo())
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "property key prefix, e.g. \"dev1.\" to read the [dev1] section")
	return cmd
}

func newPortsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ports",
		Short: "List serial ports known to the operating system",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := serial.AvailablePorts()
			if err != nil {
				return err
			}
			if len(ports) == 0 {
				log.Info().Msg("no serial ports found")
				return nil
			}
			for _, p := range ports {
				fmt.Println(p)
			}
			return nil
		},
	}
}
