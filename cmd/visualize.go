/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/notargets/emissview/InputParameters"
	"github.com/notargets/emissview/contour"
	"github.com/notargets/emissview/emissivity"
	"github.com/notargets/emissview/logging"
	"github.com/notargets/emissview/report"
	"github.com/notargets/emissview/solver"
)

type RunParameters struct {
	CaseFile    string
	SessionFile string
	Cores       int
	ShowGUI     bool
	Debug       bool
	Batch       bool
	CSVFile     string
	HTMLFile    string
	Profile     bool
}

// VisualizeCmd represents the visualize command
var VisualizeCmd = &cobra.Command{
	Use:   "visualize <casefile>",
	Short: "Plot effective emissivity over the wall boundaries of a case",
	Long: `Plot effective emissivity over the wall boundaries of a case.

Launches the solver, reads the case, groups walls by normalized emissivity,
creates one boundary cell register per group plus the "overlay" and "emiss"
named expressions, and displays a filled contour of expr:emiss.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rp := &RunParameters{CaseFile: args[0]}
		rp.SessionFile, _ = cmd.Flags().GetString("sessionFile")
		rp.Cores, _ = cmd.Flags().GetInt("cores")
		rp.ShowGUI, _ = cmd.Flags().GetBool("show-gui")
		rp.Debug, _ = cmd.Flags().GetBool("debug")
		rp.Batch, _ = cmd.Flags().GetBool("batch")
		rp.CSVFile, _ = cmd.Flags().GetString("csv")
		rp.HTMLFile, _ = cmd.Flags().GetString("html")
		rp.Profile, _ = cmd.Flags().GetBool("profile")
		sp := processInput(rp, cmd.Flags().Changed("cores"), cmd.Flags().Changed("show-gui"))
		if rp.Profile {
			defer profile.Start().Stop()
		}
		if err := RunVisualize(rp, sp); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(VisualizeCmd)
	VisualizeCmd.Flags().StringP("sessionFile", "I", "",
		"YAML file for session launch parameters like:\n\t- Executable\n\t- Precision\n\t- ProcessorCount")
	VisualizeCmd.Flags().IntP("cores", "n", 1, "number of solver cores (default 1)")
	VisualizeCmd.Flags().BoolP("show-gui", "g", false, "show the solver GUI")
	VisualizeCmd.Flags().Bool("batch", false, "do not wait for Enter before exiting")
	VisualizeCmd.Flags().String("csv", "", "write a CSV report of the grouping to this path")
	VisualizeCmd.Flags().String("html", "", "write an HTML chart of the grouping to this path")
	VisualizeCmd.Flags().Bool("profile", false, "write a CPU profile for this run")
}

// processInput resolves launch parameters: flags beat the session file, the
// session file beats the defaults. The solver executable can also come from
// the .emissview config file.
func processInput(rp *RunParameters, coresSet, guiSet bool) (sp *InputParameters.SessionParameters) {
	sp = InputParameters.Defaults()
	if exe := viper.GetString("executable"); exe != "" {
		sp.Executable = exe
	}
	if len(rp.SessionFile) != 0 {
		data, err := os.ReadFile(rp.SessionFile)
		if err != nil {
			panic(err)
		}
		if err = sp.Parse(data); err != nil {
			panic(err)
		}
	}
	if coresSet {
		sp.ProcessorCount = rp.Cores
	}
	if guiSet {
		sp.ShowGUI = rp.ShowGUI
	}
	fmt.Printf("\"%s\"\t\t= Case File\n", rp.CaseFile)
	sp.Print()
	return
}

// RunVisualize launches the solver session and runs the visualization
// against it.
func RunVisualize(rp *RunParameters, sp *InputParameters.SessionParameters) error {
	log := logging.New(rp.Debug)
	defer log.Sync()

	sess, err := solver.Launch(solver.LaunchOptions{
		Executable: sp.Executable,
		Precision:  sp.Precision,
		Cores:      sp.ProcessorCount,
		ShowGUI:    sp.ShowGUI,
	}, log)
	if err != nil {
		return err
	}
	defer sess.Exit()
	return run(sess, rp, os.Stdin, log)
}

// run is the visualization sequence proper, against any live session.
func run(sess solver.Session, rp *RunParameters, stdin io.Reader, log *zap.Logger) error {
	if err := sess.ReadCase(rp.CaseFile); err != nil {
		return err
	}
	active, err := sess.BoundaryConditionsActive()
	if err != nil {
		return err
	}
	if !active {
		return solver.ErrBoundaryConditionsInactive
	}
	avail, err := sess.DataAvailable()
	if err != nil {
		return err
	}
	if !avail {
		fmt.Println("Initialization...")
		if err = sess.Initialize(); err != nil {
			return err
		}
		fmt.Println("Initialized.")
	}

	groups, err := emissivity.Collect(sess, sess, log)
	if err != nil {
		return err
	}
	emissivity.Summarize(groups).Print()

	if err = emissivity.Synthesize(groups, sess, sess); err != nil {
		return err
	}
	if err = contour.Create(groups, sess); err != nil {
		return err
	}

	if rp.CSVFile != "" {
		if err = report.WriteCSV(groups, rp.CSVFile); err != nil {
			return err
		}
	}
	if rp.HTMLFile != "" {
		if err = report.WriteHTML(groups, rp.HTMLFile); err != nil {
			return err
		}
	}

	if !rp.Batch {
		// Keep the session (and its plot window) up until the user is done.
		fmt.Print("Press Enter to continue...")
		_, _ = bufio.NewReader(stdin).ReadString('\n')
	}
	return nil
}
