package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gutenlab/datalake/internal/server"
)

func init() {
	rootCmd.AddCommand(serveCmd())
}

func serveCmd() *cobra.Command {
	var port string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Start the http server",
		Run: func(cmd *cobra.Command, args []string) {
			server.NewServer(port).Start()
		},
	}

	command.Flags().StringVarP(&port, "port", "p", "8000", "http port")

	return command
}
