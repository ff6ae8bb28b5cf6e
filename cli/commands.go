// Package cli provides the Cobra-based CLI for storemgr.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"storemgr/auth"
	"storemgr/domain"
	"storemgr/inventory"
	"storemgr/report"
)

var (
	rootCmd = &cobra.Command{
		Use:   "storemgr",
		Short: "A store management system",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// IMPORTANT: allow tests to inject service and gate
			if svc != nil && gate != nil {
				return nil
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			lvlStr := strings.ToLower(viper.GetString("log-level"))
			lvl := slog.LevelInfo
			switch lvlStr {
			case "debug":
				lvl = slog.LevelDebug
			case "warn", "warning":
				lvl = slog.LevelWarn
			case "error":
				lvl = slog.LevelError
			}
			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}),
			))

			if svc == nil {
				svc = inventory.NewService()
			}
			if gate == nil {
				var err error
				gate, err = buildGate()
				if err != nil {
					return err
				}
			}
			return nil
		},
	}

	svc  domain.Service
	gate *auth.Gate
)

// buildGate seeds the credential table from the "users" config key, falling
// back to the reference accounts when none are configured.
func buildGate() (*auth.Gate, error) {
	var seeds []auth.Credential
	if err := viper.UnmarshalKey("users", &seeds); err != nil {
		return nil, err
	}
	if len(seeds) == 0 {
		return auth.NewDefaultGate()
	}
	return auth.NewGate(seeds...)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("STOREMGR")
	viper.AutomaticEnv()

	// add
	var name, description string
	var price float64
	var quantity int
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return errors.New("name required")
			}
			start := time.Now()
			if err := svc.AddProduct(name, description, price, quantity); err != nil {
				slog.Error("add failed", "name", name, "error", err)
				return err
			}
			slog.Info("product added", "name", name, "duration_ms", time.Since(start).Milliseconds())
			fmt.Println("Product added successfully.")
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "name")
	addCmd.Flags().StringVar(&description, "description", "", "description")
	addCmd.Flags().Float64Var(&price, "price", 0, "price")
	addCmd.Flags().IntVar(&quantity, "quantity", 0, "quantity")
	rootCmd.AddCommand(addCmd)

	// edit
	var eName, eDescription string
	var ePrice float64
	var eQuantity int
	editCmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit a product; only the supplied fields change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var update domain.ProductUpdate
			if cmd.Flags().Changed("name") {
				update.Name = &eName
			}
			if cmd.Flags().Changed("description") {
				update.Description = &eDescription
			}
			if cmd.Flags().Changed("price") {
				update.Price = &ePrice
			}
			if cmd.Flags().Changed("quantity") {
				update.Quantity = &eQuantity
			}

			start := time.Now()
			if err := svc.EditProduct(args[0], update); err != nil {
				slog.Error("edit failed", "name", args[0], "error", err)
				return err
			}
			slog.Info("product updated", "name", args[0], "duration_ms", time.Since(start).Milliseconds())
			fmt.Println("Product updated successfully.")
			return nil
		},
	}
	editCmd.Flags().StringVar(&eName, "name", "", "new name")
	editCmd.Flags().StringVar(&eDescription, "description", "", "new description")
	editCmd.Flags().Float64Var(&ePrice, "price", 0, "new price")
	editCmd.Flags().IntVar(&eQuantity, "quantity", 0, "new quantity")
	rootCmd.AddCommand(editCmd)

	// delete
	var force bool
	deleteCmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a product from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				fmt.Printf("Delete %s? (y/N): ", args[0])
				var resp string
				if _, err := fmt.Scanln(&resp); err != nil || (resp != "y" && resp != "Y") {
					fmt.Println("aborted")
					return nil
				}
			}
			if err := svc.DeleteProduct(args[0]); err != nil {
				return err
			}
			fmt.Println("Product deleted successfully.")
			return nil
		},
	}
	deleteCmd.Flags().BoolVar(&force, "force", false, "skip confirmation")
	rootCmd.AddCommand(deleteCmd)

	// list
	var lOutput string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products in insertion order",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := svc.Products()
			if lOutput == "json" {
				b, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(b))
				return nil
			}
			for _, p := range out {
				fmt.Printf("%s | %d | %.2f | %s\n", p.Name, p.Quantity, p.Price, p.Description)
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&lOutput, "output", "", "output format")
	rootCmd.AddCommand(listCmd)

	// buy
	var bQuantity int
	var bPrice float64
	buyCmd := &cobra.Command{
		Use:   "buy <name>",
		Short: "Record a stock purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := svc.RecordPurchase(args[0], bQuantity, bPrice); err != nil {
				slog.Error("purchase failed", "name", args[0], "error", err)
				return err
			}
			slog.Info("purchase recorded",
				"name", args[0],
				"quantity", bQuantity,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			fmt.Println("Purchase recorded successfully.")
			return nil
		},
	}
	buyCmd.Flags().IntVar(&bQuantity, "quantity", 0, "quantity purchased")
	buyCmd.Flags().Float64Var(&bPrice, "price", 0, "unit purchase price")
	rootCmd.AddCommand(buyCmd)

	// sell
	var sQuantity int
	var sPrice float64
	sellCmd := &cobra.Command{
		Use:   "sell <name>",
		Short: "Record a sale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			if err := svc.RecordSale(args[0], sQuantity, sPrice); err != nil {
				slog.Error("sale failed", "name", args[0], "error", err)
				return err
			}
			slog.Info("sale recorded",
				"name", args[0],
				"quantity", sQuantity,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			fmt.Println("Sale recorded successfully.")
			return nil
		},
	}
	sellCmd.Flags().IntVar(&sQuantity, "quantity", 0, "quantity sold")
	sellCmd.Flags().Float64Var(&sPrice, "price", 0, "unit sale price")
	rootCmd.AddCommand(sellCmd)

	// report
	reportCmd := &cobra.Command{
		Use:   "report <inventory|sales|purchases>",
		Short: "Print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "inventory":
				fmt.Print(report.Inventory(svc.Products()))
			case "sales":
				fmt.Print(report.Sales(svc.Sales()))
			case "purchases":
				fmt.Print(report.Purchases(svc.Purchases()))
			default:
				return fmt.Errorf("unknown report kind: %s", args[0])
			}
			return nil
		},
	}
	rootCmd.AddCommand(reportCmd)

	// totals
	totalsCmd := &cobra.Command{
		Use:   "totals",
		Short: "Print ledger totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(report.Totals(svc.TotalPurchaseCost(), svc.TotalSales(), svc.TotalProfit()))
			return nil
		},
	}
	rootCmd.AddCommand(totalsCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
