// Command logger writes messages in syslog style to stdout, in the manner of
// logger(1).
package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/allanhung/stdout-syslog/pkg/config"
	"github.com/allanhung/stdout-syslog/pkg/syslog"
)

func main() {
	cfg, err := config.Get()
	if err != nil {
		logrus.Fatalf("[logger] %s", err)
	}
	if err := newCommand(cfg, os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand(cfg *config.Config, stdin io.Reader, stdout io.Writer) *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "logger [message...]",
		Short: "Write syslog style lines to stdout",
		Long: "logger writes its arguments, or each line read from stdin when no " +
			"arguments are given, as one syslog style line on stdout.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if priority != "" {
				p, err := syslog.ParsePriority(priority)
				if err != nil {
					return err
				}
				cfg.Facility = syslog.FacilityName(p.Facility())
				cfg.Level = syslog.LevelName(p.Level())
			}

			logger, err := cfg.NewLogger(stdout)
			if err != nil {
				return err
			}
			defer logger.Close()

			if len(args) > 0 {
				return logger.Log(syslog.Symbolic(cfg.Level), strings.Join(args, " "))
			}

			w, err := syslog.NewWriter(logger, syslog.Symbolic(cfg.Level), syslog.Symbolic(cfg.Facility))
			if err != nil {
				return err
			}
			scanner := bufio.NewScanner(stdin)
			for scanner.Scan() {
				if _, err := w.Write(scanner.Bytes()); err != nil {
					return err
				}
			}
			return errors.Wrap(scanner.Err(), "read stdin")
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Ident, "tag", "t", cfg.Ident, "Identity written with every line")
	flags.StringVarP(&priority, "priority", "p", "", "Priority as facility.level, e.g. local0.err")
	flags.StringVarP(&cfg.Upto, "upto", "u", cfg.Upto, "Drop lines less severe than this level")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Output format: text|rfc5424")
	flags.BoolVarP(&cfg.PID, "pid", "i", cfg.PID, "Include the process id (rfc5424 format)")
	flags.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Reject unknown level and facility names")

	return cmd
}
