package main

//
// tasks subcommand
//

import (
	"github.com/odesk/odesk-go/internal/model"
	"github.com/odesk/odesk-go/internal/routers/activities"
	"github.com/spf13/cobra"
)

// registerTasks registers the tasks subcommand and its children.
func registerTasks(rootCmd *cobra.Command, env *environment) {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage the oTask activities of a user",
	}
	rootCmd.AddCommand(tasksCmd)

	// run creates the router and invokes fx with it
	run := func(fx func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			clnt, err := env.newClient()
			if err != nil {
				return err
			}
			defer clnt.CloseIdleConnections()
			result, err := fx(cmd, activities.NewUser(clnt), args)
			if err != nil {
				return err
			}
			env.print(result)
			return nil
		}
	}

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "list COMPANY TEAM USER",
		Short: "List the activities of a user",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			return user.List(cmd.Context(), args[0], args[1], args[2])
		}),
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "full-list COMPANY TEAM USER",
		Short: "List the activities of a user with full details",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			return user.FullList(cmd.Context(), args[0], args[1], args[2])
		}),
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "get COMPANY TEAM USER CODE",
		Short: "Get a specific activity",
		Args:  cobra.ExactArgs(4),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			return user.SpecificList(cmd.Context(), args[0], args[1], args[2], args[3])
		}),
	})

	addCmd := &cobra.Command{
		Use:   "add COMPANY TEAM USER",
		Short: "Add an activity",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			params, err := env.params()
			if err != nil {
				return nil, err
			}
			return user.AddActivity(cmd.Context(), args[0], args[1], args[2], params)
		}),
	}
	registerParamsFlag(addCmd, env)
	tasksCmd.AddCommand(addCmd)

	updateCmd := &cobra.Command{
		Use:   "update COMPANY TEAM USER CODE",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(4),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			params, err := env.params()
			if err != nil {
				return nil, err
			}
			return user.UpdateActivity(cmd.Context(), args[0], args[1], args[2], args[3], params)
		}),
	}
	registerParamsFlag(updateCmd, env)
	tasksCmd.AddCommand(updateCmd)

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "delete COMPANY TEAM USER CODE",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(4),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			return user.DeleteActivity(cmd.Context(), args[0], args[1], args[2], args[3])
		}),
	})

	tasksCmd.AddCommand(&cobra.Command{
		Use:   "delete-all COMPANY TEAM USER",
		Short: "Delete all the activities of a user",
		Args:  cobra.ExactArgs(3),
		RunE: run(func(cmd *cobra.Command, user *activities.User, args []string) (model.Result, error) {
			return user.DeleteAllActivities(cmd.Context(), args[0], args[1], args[2])
		}),
	})
}

// registerParamsFlag registers the --param flag with the given command.
func registerParamsFlag(cmd *cobra.Command, env *environment) {
	cmd.Flags().StringArrayVarP(
		&env.options.Params,
		"param",
		"p",
		[]string{},
		"add KEY=VALUE parameter to the request (can be repeated multiple times)",
	)
}
