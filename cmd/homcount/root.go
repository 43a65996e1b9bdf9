package main

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app carries what every subcommand shares.
type app struct {
	ctx     context.Context
	log     *logrus.Logger
	out     io.Writer
	verbose bool
}

// Execute runs the CLI with args, writing results to stdout and logs to stderr.
func Execute(ctx context.Context, version string, args []string) error {
	root := newRootCmd(ctx, version, os.Stdout, os.Stderr)
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd(ctx context.Context, version string, out, errOut io.Writer) *cobra.Command {
	a := &app{ctx: ctx, log: logrus.New(), out: out}
	a.log.SetOutput(errOut)

	root := &cobra.Command{
		Use:          "homcount",
		Short:        "Count homomorphisms between finite graphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newCountCmd(a),
		newFamilyCmd(a),
		newDemoCmd(a),
		newVersionCmd(a, version),
	)
	return root
}

func newVersionCmd(a *app, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := io.WriteString(a.out, version+"\n")
			return err
		},
	}
}
