/*
Copyright © 2021 the IceShell authors.
This file is part of IceShell.

IceShell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

IceShell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with IceShell.  If not, see <http://www.gnu.org/licenses/>.
*/

package iceshellutil

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cryomodel/iceshell"
	"github.com/cryomodel/iceshell/eos"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to IceShell.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ScenarioFile",
			usage: `
              ScenarioFile is the path to the TOML scenario describing the
              shell layers to evaluate. It can include environment variables.`,
			shorthand:  "s",
			defaultVal: "scenario.toml",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path to the desired TOML report location. It can
              include environment variables.`,
			shorthand:  "o",
			defaultVal: "iceshell_output.toml",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CacheEntries",
			usage: `
              CacheEntries is the number of material-property evaluations to
              hold in the in-memory cache. Set to 0 to disable caching.`,
			defaultVal: 1000,
			flagsets:   []*pflag.FlagSet{runCmd.Flags(), sweepCmd.Flags()},
		},
		{
			name: "Sweep.Phase",
			usage: `
              Sweep.Phase is the phase of the swept layer, e.g. "ice I" or
              "clathrate".`,
			defaultVal: "ice I",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.TTop",
			usage: `
              Sweep.TTop is the temperature at the top of the swept layer in K.`,
			defaultVal: 100.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.TBottom",
			usage: `
              Sweep.TBottom is the temperature at the bottom of the swept layer
              in K.`,
			defaultVal: 270.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.PMid",
			usage: `
              Sweep.PMid is the pressure at the midpoint of the swept layer in
              MPa.`,
			defaultVal: 5.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Gravity",
			usage: `
              Sweep.Gravity is the gravitational acceleration within the swept
              layer in m/s².`,
			defaultVal: 1.3,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.MinThickness",
			usage: `
              Sweep.MinThickness is the smallest shell thickness of the sweep
              in m.`,
			defaultVal: 1000.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.MaxThickness",
			usage: `
              Sweep.MaxThickness is the largest shell thickness of the sweep
              in m.`,
			defaultVal: 50000.0,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
		{
			name: "Sweep.Points",
			usage: `
              Sweep.Points is the number of thicknesses to evaluate.`,
			defaultVal: 50,
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("ICESHELL")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(phasesCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("iceshell: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// provider builds the material-property provider used by the
// commands, optionally wrapped in a cache.
func provider() iceshell.PropertyProvider {
	p := iceshell.PropertyProvider(eos.New())
	if n := Cfg.GetInt("CacheEntries"); n > 0 {
		p = eos.NewCached(p, n)
	}
	return p
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "iceshell",
	Short: "A convection-regime model for planetary ice shells.",
	Long: `IceShell estimates whether the ice or clathrate shells of icy moons and
planets transport heat by conduction or by solid-state convection, and
quantifies the resulting heat flux and thermal boundary layer geometry.
Use the subcommands specified below to access the model functionality.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'ICESHELL_var' where 'var'
is the name of the variable to be set. Many configuration variables are
additionally allowed to contain environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of IceShell.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("IceShell v%s\n", iceshell.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd evaluates every layer of a scenario and writes a TOML report.
var runCmd = &cobra.Command{
	Use:   "run [scenario file]",
	Short: "Evaluate the layers of a scenario.",
	Long: `run evaluates the convection regime of every shell layer in a scenario
file and writes a TOML report. The scenario file may be given as an
argument or through the ScenarioFile configuration variable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioFile := Cfg.GetString("ScenarioFile")
		if len(args) == 1 {
			scenarioFile = args[0]
		}
		scenario, err := ReadScenario(scenarioFile)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		results, err := Evaluate(scenario, provider())
		if err != nil {
			return err
		}
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("iceshell: problem creating report file: %v", err)
		}
		defer f.Close()
		return WriteReport(f, results)
	},
	DisableAutoGenTag: true,
}

// sweepCmd evaluates one thermal state across a range of shell
// thicknesses.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a layer across a thickness range.",
	Long: `sweep evaluates the same shell thermal state across a range of
thicknesses and prints the regime at each, locating the thickness at
which the shell starts to convect.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		phase, err := iceshell.ParsePhase(Cfg.GetString("Sweep.Phase"))
		if err != nil {
			return err
		}
		layer := iceshell.Layer{}
		for _, v := range []struct {
			name string
			dst  *float64
		}{
			{"Sweep.TTop", &layer.TTop},
			{"Sweep.TBottom", &layer.TBottom},
			{"Sweep.PMid", &layer.PMid},
			{"Sweep.Gravity", &layer.Gravity},
		} {
			if *v.dst, err = getFloat(v.name, Cfg); err != nil {
				return err
			}
		}
		minH, err := getFloat("Sweep.MinThickness", Cfg)
		if err != nil {
			return err
		}
		maxH, err := getFloat("Sweep.MaxThickness", Cfg)
		if err != nil {
			return err
		}
		points, err := Sweep(layer, phase, provider(), minH, maxH, Cfg.GetInt("Sweep.Points"))
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "thickness [m]\tRa\theat flux [W/m²]\tregime")
		for _, pt := range points {
			regime := "conducting"
			if pt.Convecting {
				regime = "convecting"
			}
			fmt.Fprintf(w, "%g\t%.4g\t%.4g\t%s\n", pt.Thickness, pt.Ra, pt.HeatFlux, regime)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}

// phasesCmd lists the supported phases and their rheological
// constants.
var phasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "List the supported phases.",
	Long: `phases lists the phases the convection calculation supports together
with their creep activation energies and melting-point viscosities.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "phase\tactivation energy [J/mol]\tmelt viscosity [Pa s]")
		for _, phase := range iceshell.Phases() {
			eAct, err := iceshell.ActivationEnergy(phase)
			if err != nil {
				return err
			}
			etaMelt, err := iceshell.MeltViscosity(phase)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%v\t%g\t%g\n", phase, eAct, etaMelt)
		}
		return w.Flush()
	},
	DisableAutoGenTag: true,
}
