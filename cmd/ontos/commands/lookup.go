package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/PavelShpagin/ontos/display"
	"github.com/PavelShpagin/ontos/errors"
	"github.com/PavelShpagin/ontos/sym"
)

// InstancesCmd lists the instances assigned to a class.
var InstancesCmd = &cobra.Command{
	Use:   "instances <class>",
	Short: "List the instances assigned to a class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		class, err := rt.Resolver.Resolve(args[0])
		if err != nil {
			return err
		}
		if !rt.Store.IsClass(class) {
			return errors.Newf("%q is not a class", class)
		}

		instances := rt.Store.InstancesOf(class)
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(map[string]interface{}{
				"class":     class,
				"instances": instances,
			})
		}

		if len(instances) == 0 {
			pterm.Info.Printfln("class %s has no instances", class)
			return nil
		}
		pterm.Info.Printfln("%d instance(s) of %s:", len(instances), class)
		for _, inst := range instances {
			pterm.Printfln("  %s %s %s", inst, sym.InstanceOf, class)
		}
		return nil
	},
}

// ClassOfCmd shows which class an instance belongs to.
var ClassOfCmd = &cobra.Command{
	Use:   "classof <instance>",
	Short: "Show the class an instance is assigned to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := LoadRuntime(cmd)
		if err != nil {
			return err
		}
		instance, err := rt.Resolver.Resolve(args[0])
		if err != nil {
			return err
		}

		class, ok := rt.Store.ClassOf(instance)
		if !ok {
			return errors.Newf("%q is not an instance", instance)
		}

		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(map[string]string{
				"instance": instance,
				"class":    class,
			})
		}
		pterm.Success.Printfln("%s %s %s", instance, sym.InstanceOf, class)
		return nil
	},
}
