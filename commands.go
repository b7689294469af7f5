package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdxmph/contact-manager/internal/config"
	"github.com/pdxmph/contact-manager/internal/contact"
	"github.com/pdxmph/contact-manager/internal/logger"
	"github.com/pdxmph/contact-manager/internal/query"
)

func listCmd(configPath, logLevel *string) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the starting contacts, optionally filtered",
		Long: `Print the contacts a new session starts with as a table.
--search matches name, contact number, email and state, ignoring case.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath, *logLevel)
			if err != nil {
				return err
			}
			log, closer, err := logger.Setup(cfg.Log)
			if err != nil {
				return fmt.Errorf("setting up logging: %w", err)
			}
			defer closer.Close()

			s := newStore(cfg, log)
			contacts := query.Filter(s.Items(), search)
			log.Debug("listing contacts", "search", search, "matches", len(contacts))
			return printContacts(cmd.OutOrStdout(), contacts)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show contacts matching this term")
	return cmd
}

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true)
	listBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// printContacts writes contacts as a bordered table. Columns are as wide as
// their widest cell; nothing is truncated.
func printContacts(w io.Writer, contacts []contact.Contact) error {
	if len(contacts) == 0 {
		_, err := fmt.Fprintln(w, "No contacts found.")
		return err
	}

	rows := [][]string{{"ID", "Name", "Contact", "Email", "Address"}}
	for _, c := range contacts {
		rows = append(rows, []string{c.ID, c.Name, c.ContactNo, c.Email, c.FullAddress()})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(rows)+1)
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}
		line := strings.Join(cells, "  ")
		if r == 0 {
			line = listHeaderStyle.Render(line)
		}
		lines = append(lines, line)
		if r == 0 {
			lines = append(lines, strings.Repeat("─", lipgloss.Width(line)))
		}
	}

	_, err := fmt.Fprintln(w, listBorderStyle.Render(strings.Join(lines, "\n")))
	return err
}

func configCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			path := *configPath
			if path == "" {
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.Default()
			if *configPath == "" {
				err = cfg.Save()
			} else {
				err = cfg.SaveTo(path)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	cmd.AddCommand(initCmd)
	return cmd
}
