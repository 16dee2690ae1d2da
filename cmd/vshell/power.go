package main

import (
	"fmt"

	"vshell/internal/config"

	"github.com/spf13/cobra"
)

// powerCmd switches the relay once, for checking the wiring without the
// browser.
func powerCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "power on|off",
		Short:     "Switch the display power relay",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
			default:
				return fmt.Errorf("unknown power state %q, want on or off", args[0])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			ctrl, _, err := newController(cfg)
			if err != nil {
				return err
			}

			// Start from the opposite state so Set always writes
			ctrl.Force(!on)
			if err := ctrl.Set(on); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Power %s\n", args[0])
			return nil
		},
	}
}

// devicesCmd lists hidraw devices and marks the one the relay signature
// selects.
func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List hidraw devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			_, disc, err := newController(cfg)
			if err != nil {
				return err
			}

			candidates, err := disc.Candidates()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No hidraw devices found.")
				return nil
			}
			for _, c := range candidates {
				mark := " "
				if c.Match {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n", mark, c.Node, c.UdevPath)
			}
			return nil
		},
	}
}
