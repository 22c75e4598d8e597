package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"deviceInventoryManagement/models"
)

var deviceCmd = &cobra.Command{
	Use:   "device",
	Short: "Manage device records",
}

var deviceFlags struct {
	number       string
	devType      string
	brand        string
	model        string
	status       string
	location     string
	purchaseDate string
	notes        string
	cost         float64
}

var deviceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a device",
	RunE:  runDeviceAdd,
}

var deviceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all devices",
	RunE:  runDeviceList,
}

var deviceShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single device",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeviceShow,
}

var deviceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a device",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeviceUpdate,
}

var deviceRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a device",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeviceRm,
}

func addDeviceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&deviceFlags.number, "number", "", "device number (required for add)")
	cmd.Flags().StringVar(&deviceFlags.devType, "type", "", "device type")
	cmd.Flags().StringVar(&deviceFlags.brand, "brand", "", "brand")
	cmd.Flags().StringVar(&deviceFlags.model, "model", "", "model")
	cmd.Flags().StringVar(&deviceFlags.status, "status", "", "status")
	cmd.Flags().StringVar(&deviceFlags.location, "location", "", "location")
	cmd.Flags().StringVar(&deviceFlags.purchaseDate, "purchase-date", "", "purchase date (free text)")
	cmd.Flags().StringVar(&deviceFlags.notes, "notes", "", "notes")
	cmd.Flags().Float64Var(&deviceFlags.cost, "cost", 0, "cost")
}

func init() {
	addDeviceFlags(deviceAddCmd)
	addDeviceFlags(deviceUpdateCmd)
	deviceCmd.AddCommand(deviceAddCmd, deviceListCmd, deviceShowCmd, deviceUpdateCmd, deviceRmCmd)
}

func parseDeviceID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid device id %q", arg)
	}
	return id, nil
}

func runDeviceAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	s, err := a.currentSession()
	if err != nil {
		return err
	}
	// Device number is the only field the boundary requires.
	if deviceFlags.number == "" {
		return fmt.Errorf("--number is required")
	}

	d := &models.Device{
		DeviceNumber: deviceFlags.number,
		Type:         deviceFlags.devType,
		Brand:        deviceFlags.brand,
		Model:        deviceFlags.model,
		Status:       deviceFlags.status,
		Location:     deviceFlags.location,
		PurchaseDate: deviceFlags.purchaseDate,
		Notes:        deviceFlags.notes,
		Cost:         deviceFlags.cost,
	}
	if !a.devices.Insert(ctx, d) {
		return fmt.Errorf("save failed")
	}
	a.logs.InsertActionLog(ctx, s.UserID, "Added device: "+d.DeviceNumber, nowTimestamp())
	fmt.Printf("Saved device %s (ID %d)\n", d.DeviceNumber, d.ID)
	return nil
}

func runDeviceList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	devices := a.devices.GetAll(context.Background())
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNUMBER\tTYPE\tBRAND\tMODEL\tSTATUS\tLOCATION\tCOST")
	for _, d := range devices {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%.2f\n",
			d.ID, d.DeviceNumber, d.Type, d.Brand, d.Model, d.Status, d.Location, d.Cost)
	}
	return w.Flush()
}

func runDeviceShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	id, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}
	d := a.devices.GetByID(context.Background(), id)
	if d == nil {
		return fmt.Errorf("device %d not found", id)
	}
	fmt.Printf("ID:            %d\n", d.ID)
	fmt.Printf("Number:        %s\n", d.DeviceNumber)
	fmt.Printf("Type:          %s\n", d.Type)
	fmt.Printf("Brand:         %s\n", d.Brand)
	fmt.Printf("Model:         %s\n", d.Model)
	fmt.Printf("Status:        %s\n", d.Status)
	fmt.Printf("Location:      %s\n", d.Location)
	fmt.Printf("Purchase date: %s\n", d.PurchaseDate)
	fmt.Printf("Notes:         %s\n", d.Notes)
	fmt.Printf("Cost:          %.2f\n", d.Cost)
	return nil
}

func runDeviceUpdate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	s, err := a.currentSession()
	if err != nil {
		return err
	}
	id, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}
	d := a.devices.GetByID(ctx, id)
	if d == nil {
		return fmt.Errorf("device %d not found", id)
	}

	// Only flags the caller set overwrite existing fields.
	f := cmd.Flags()
	if f.Changed("number") {
		if deviceFlags.number == "" {
			return fmt.Errorf("device number must not be empty")
		}
		d.DeviceNumber = deviceFlags.number
	}
	if f.Changed("type") {
		d.Type = deviceFlags.devType
	}
	if f.Changed("brand") {
		d.Brand = deviceFlags.brand
	}
	if f.Changed("model") {
		d.Model = deviceFlags.model
	}
	if f.Changed("status") {
		d.Status = deviceFlags.status
	}
	if f.Changed("location") {
		d.Location = deviceFlags.location
	}
	if f.Changed("purchase-date") {
		d.PurchaseDate = deviceFlags.purchaseDate
	}
	if f.Changed("notes") {
		d.Notes = deviceFlags.notes
	}
	if f.Changed("cost") {
		d.Cost = deviceFlags.cost
	}

	if !a.devices.Update(ctx, d) {
		return fmt.Errorf("update failed")
	}
	a.logs.InsertActionLog(ctx, s.UserID,
		fmt.Sprintf("Updated device: %s (ID %d)", d.DeviceNumber, d.ID), nowTimestamp())
	fmt.Printf("Updated device %s (ID %d)\n", d.DeviceNumber, d.ID)
	return nil
}

func runDeviceRm(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := context.Background()

	s, err := a.currentSession()
	if err != nil {
		return err
	}
	id, err := parseDeviceID(args[0])
	if err != nil {
		return err
	}
	d := a.devices.GetByID(ctx, id)
	if d == nil {
		return fmt.Errorf("device %d not found", id)
	}

	if !a.devices.Delete(ctx, id) {
		return fmt.Errorf("delete failed")
	}
	a.logs.InsertActionLog(ctx, s.UserID,
		fmt.Sprintf("Deleted device: %s (ID %d)", d.DeviceNumber, d.ID), nowTimestamp())
	fmt.Printf("Deleted device %s (ID %d)\n", d.DeviceNumber, d.ID)
	return nil
}
