package cmd

import (
	"context"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gutenlab/datalake/internal/config"
	"github.com/gutenlab/datalake/internal/store"
)

func init() {
	rootCmd.AddCommand(siteCmd)
	siteCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	siteCmd.AddCommand(listSitesCmd())
}

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "site commands",
}

func listSitesCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "list",
		Short: "List all sites",
		Run: func(cmd *cobra.Command, args []string) {
			st := store.NewGormStore(config.GetDb(config.LoadConfig()))

			sites, err := st.ListSites(context.Background())
			if err != nil {
				logrus.Errorf("error listing sites: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Name", "Title", "URL"})
			for _, site := range sites {
				table.Append([]string{
					strconv.FormatUint(uint64(site.ID), 10),
					color.GreenString(site.Name),
					site.Title,
					site.URL,
				})
			}
			table.Render()
		},
	}

	return command
}
