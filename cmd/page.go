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
	rootCmd.AddCommand(pageCmd)
	pageCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	pageCmd.AddCommand(listPagesCmd())
}

var pageCmd = &cobra.Command{
	Use:   "page",
	Short: "page commands",
}

func listPagesCmd() *cobra.Command {
	var siteName string

	command := &cobra.Command{
		Use:   "list",
		Short: "List the pages of a site",
		Run: func(cmd *cobra.Command, args []string) {
			if siteName == "" {
				logrus.Error("missing site name")
				return
			}

			st := store.NewGormStore(config.GetDb(config.LoadConfig()))

			pages, err := st.ListPagesBySite(context.Background(), siteName)
			if err != nil {
				logrus.Errorf("error listing pages: %v", err)
				return
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Section", "Name", "Title"})
			for _, page := range pages {
				table.Append([]string{
					strconv.FormatUint(uint64(page.ID), 10),
					strconv.FormatUint(uint64(page.SectionID), 10),
					color.GreenString(page.Name),
					page.Title,
				})
			}
			table.Render()
		},
	}

	command.Flags().StringVarP(&siteName, "site", "s", "", "site name")

	return command
}
