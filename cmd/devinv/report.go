package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show device count summaries",
	RunE:  runDashboard,
}

var logsDate string

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show audit trail reports",
}

var logsLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Show login/logout logs, newest first",
	RunE:  runLoginLogs,
}

var logsActionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Show user action logs, newest first",
	RunE:  runActionLogs,
}

func init() {
	logsCmd.PersistentFlags().StringVar(&logsDate, "date", "", "filter by date prefix (MM/dd/yyyy)")
	logsCmd.AddCommand(logsLoginCmd, logsActionsCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	total := a.devices.CountAll(ctx)
	newCount := a.devices.CountByStatus(ctx, "new")
	damaged := a.devices.CountByStatuses(ctx, []string{"broken", "missing"})
	repaired := a.devices.CountByStatus(ctx, "repaired")

	fmt.Printf("Total devices:    %d\n", total)
	fmt.Printf("New devices:      %d\n", newCount)
	fmt.Printf("Damaged devices:  %d\n", damaged)
	fmt.Printf("Repaired devices: %d\n", repaired)
	return nil
}

func runLoginLogs(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	entries := a.logs.GetLoginLogs(ctx)
	if logsDate != "" {
		entries = a.logs.GetLoginLogsByDatePrefix(ctx, logsDate)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tACTION\tTIMESTAMP")
	for _, e := range entries {
		user := "(deleted)"
		if e.Username != nil {
			user = *e.Username
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, user, e.ActionType, e.Timestamp)
	}
	return w.Flush()
}

func runActionLogs(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	entries := a.logs.GetActionLogs(ctx)
	if logsDate != "" {
		entries = a.logs.GetActionLogsByDatePrefix(ctx, logsDate)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSER\tACTION\tTIMESTAMP")
	for _, e := range entries {
		user := "(deleted)"
		if e.Username != nil {
			user = *e.Username
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, user, e.ActionDescription, e.Timestamp)
	}
	return w.Flush()
}
