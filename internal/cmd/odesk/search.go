package main

//
// search subcommand
//

import (
	"github.com/odesk/odesk-go/internal/routers/freelancers"
	"github.com/spf13/cobra"
)

// registerSearch registers the search subcommand.
func registerSearch(rootCmd *cobra.Command, env *environment) {
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search for freelancers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := env.params()
			if err != nil {
				return err
			}
			clnt, err := env.newClient()
			if err != nil {
				return err
			}
			defer clnt.CloseIdleConnections()
			result, err := freelancers.NewSearch(clnt).Find(cmd.Context(), params)
			if err != nil {
				return err
			}
			env.print(result)
			return nil
		},
	}
	registerParamsFlag(searchCmd, env)
	rootCmd.AddCommand(searchCmd)
}
