package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TudorHulban/roadmap"
	"github.com/TudorHulban/roadmap/internal/render"
	"github.com/TudorHulban/roadmap/internal/tui"
	"github.com/TudorHulban/roadmap/internal/ui"
)

func main() {
	if errExec := rootCmd().Execute(); errExec != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorLine(errExec))
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "Plan a backlog onto a team, week by week",
		Long: `Roadmap assigns engineers to backlog items one week at a time.
Items are taken in priority order, lowest first, and each item is given
at most its max tracks engineers per week until its size is used up.`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().String(flagConfig, "", "Config file (default $XDG_CONFIG_HOME/roadmap/config.yaml)")
	cmd.PersistentFlags().String(flagBacklog, "", "Backlog file, .json or .yaml")
	cmd.PersistentFlags().String(flagLogLevel, "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String(flagLogDir, "", "Directory for roadmap.log (default stderr)")

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(viewCmd())
	cmd.AddCommand(backlogCmd())

	return cmd
}

func addScheduleFlags(cmd *cobra.Command) {
	cmd.Flags().Int(flagTeamSize, 0, "Number of engineers available every week")
	cmd.Flags().String(flagStart, "", "Start date of the first week, YYYY-MM-DD (default today)")
}

func generateCmd() *cobra.Command {
	var flagOutput string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Schedule the backlog and print the roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, errSession := openSession(cmd)
			if errSession != nil {
				return errSession
			}
			defer s.Close()

			format, errFormat := s.cfg.Format()
			if errFormat != nil {
				return errFormat
			}

			doc, errDocument := s.buildDocument()
			if errDocument != nil {
				return errDocument
			}

			if flagOutput == "" {
				if errRender := render.Render(cmd.OutOrStdout(), format, doc); errRender != nil {
					return errRender
				}

				if format == render.FormatTable {
					return ui.Summary(cmd.OutOrStdout(), doc)
				}

				return nil
			}

			file, errCreate := os.Create(flagOutput)
			if errCreate != nil {
				return fmt.Errorf("create output file: %w", errCreate)
			}

			if errRender := render.Render(file, format, doc); errRender != nil {
				_ = file.Close()

				return errRender
			}

			if errClose := file.Close(); errClose != nil {
				return errClose
			}

			s.logger.Info("roadmap written", "path", flagOutput, "format", format)

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s %s, %d weeks\n",

				ui.Green("wrote"),
				flagOutput,
				len(doc.Weeks),
			)

			return nil
		},
	}

	addScheduleFlags(cmd)

	cmd.Flags().String(flagFormat, "", "Output format: table, json, yaml, html")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write the roadmap to a file instead of stdout")

	return cmd
}

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the roadmap interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, errSession := openSession(cmd)
			if errSession != nil {
				return errSession
			}
			defer s.Close()

			doc, errDocument := s.buildDocument()
			if errDocument != nil {
				return errDocument
			}

			return tui.Run(doc)
		},
	}

	addScheduleFlags(cmd)

	return cmd
}

func backlogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backlog",
		Short: "Maintain the backlog file",
	}

	cmd.AddCommand(backlogListCmd())
	cmd.AddCommand(backlogAddCmd())
	cmd.AddCommand(backlogRemoveCmd())

	return cmd
}

func backlogListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List backlog items in priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, errSession := openSession(cmd)
			if errSession != nil {
				return errSession
			}
			defer s.Close()

			items, errLoad := s.store.Load()
			if errLoad != nil {
				return errLoad
			}

			out := cmd.OutOrStdout()

			if len(items) == 0 {
				fmt.Fprintln(out, ui.Dim("backlog is empty: "+s.store.Path()))

				return nil
			}

			for _, item := range roadmap.ByPriority(items) {
				fmt.Fprintf(
					out,
					"%s priority %d, size %d, max tracks %d\n",

					ui.Bold(item.Name),
					item.Priority,
					item.Size,
					item.MaxTracks,
				)

				if description := strings.TrimSpace(item.Description); description != "" {
					fmt.Fprintln(out, "  "+ui.Dim(description))
				}
			}

			return nil
		},
	}
}

func backlogAddCmd() *cobra.Command {
	var params roadmap.ParamsNewWorkItem

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an item, replacing any item with the same name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, errSession := openSession(cmd)
			if errSession != nil {
				return errSession
			}
			defer s.Close()

			params.Name = args[0]

			item, errCr := roadmap.NewWorkItem(&params)
			if errCr != nil {
				return errCr
			}

			if errPut := s.store.Put(*item); errPut != nil {
				return errPut
			}

			s.logger.Info("backlog item saved", "item", item.Name, "path", s.store.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Green("saved"), item)

			return nil
		},
	}

	cmd.Flags().StringVar(&params.Description, "description", "", "Free text shown in listings")
	cmd.Flags().IntVar(&params.Priority, "priority", 0, "Lower is scheduled first")
	cmd.Flags().IntVar(&params.Size, "size", 1, "Effort in engineer-weeks")
	cmd.Flags().IntVar(&params.MaxTracks, "max-tracks", 1, "Most engineers the item can take in one week")

	return cmd
}

func backlogRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an item by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, errSession := openSession(cmd)
			if errSession != nil {
				return errSession
			}
			defer s.Close()

			if errRemove := s.store.Remove(args[0]); errRemove != nil {
				return errRemove
			}

			s.logger.Info("backlog item removed", "item", args[0], "path", s.store.Path())

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Yellow("removed"), args[0])

			return nil
		},
	}
}
