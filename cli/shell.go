package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"storemgr/auth"
	"storemgr/domain"
	"storemgr/report"
)

func init() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive store management session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(shellCmd)
}

// runShell drives a full session: login against the gate, then the numbered
// menu loop. EOF on input ends the session cleanly.
func runShell(in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	role, err := login(r, out)
	if err != nil {
		return nil
	}
	fmt.Fprintf(out, "Authentication successful! You are logged in as %s\n", role)

	for {
		fmt.Fprintln(out, "Welcome to the Store Management System")
		fmt.Fprintln(out, "1. Manage Inventory")
		fmt.Fprintln(out, "2. Record Sale")
		fmt.Fprintln(out, "3. Record Purchase")
		fmt.Fprintln(out, "4. Generate Report")
		fmt.Fprintln(out, "5. Exit")

		choice, err := prompt(r, out, "Select an option: ")
		if err != nil {
			return nil
		}
		switch choice {
		case "1":
			manageInventory(r, out)
		case "2":
			sellInteractive(r, out)
		case "3":
			buyInteractive(r, out)
		case "4":
			generateReport(r, out)
		case "5":
			fmt.Fprintln(out, "Exiting...")
			return nil
		default:
			fmt.Fprintln(out, "Invalid choice, please try again.")
		}
	}
}

// login re-prompts until the gate accepts a username/password pair.
func login(r *bufio.Reader, out io.Writer) (auth.Role, error) {
	for {
		username, err := prompt(r, out, "Username: ")
		if err != nil {
			return "", err
		}
		password, err := prompt(r, out, "Password: ")
		if err != nil {
			return "", err
		}

		role, err := gate.Authenticate(username, password)
		if err != nil {
			fmt.Fprintln(out, "Invalid credentials, please try again.")
			continue
		}
		return role, nil
	}
}

func manageInventory(r *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "--- Manage Inventory ---")
	fmt.Fprintln(out, "1. Add Product")
	fmt.Fprintln(out, "2. Edit Product")
	fmt.Fprintln(out, "3. Delete Product")
	fmt.Fprintln(out, "4. List Products")
	fmt.Fprintln(out, "5. Back to Main Menu")

	choice, err := prompt(r, out, "Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		addInteractive(r, out)
	case "2":
		editInteractive(r, out)
	case "3":
		deleteInteractive(r, out)
	case "4":
		fmt.Fprint(out, report.Inventory(svc.Products()))
	default:
		fmt.Fprintln(out, "Invalid choice, returning to main menu.")
	}
}

func addInteractive(r *bufio.Reader, out io.Writer) {
	name, err := prompt(r, out, "Product Name: ")
	if err != nil {
		return
	}
	description, err := prompt(r, out, "Product Description: ")
	if err != nil {
		return
	}
	price, err := promptFloat(r, out, "Product Price: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid price: %v\n", err)
		return
	}
	quantity, err := promptInt(r, out, "Product Quantity: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid quantity: %v\n", err)
		return
	}

	if err := svc.AddProduct(name, description, price, quantity); err != nil {
		fmt.Fprintf(out, "Failed to add product: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Product added successfully.")
}

// editInteractive builds a partial update: an empty or unparseable answer
// leaves that field untouched.
func editInteractive(r *bufio.Reader, out io.Writer) {
	name, err := prompt(r, out, "Product Name to Edit: ")
	if err != nil {
		return
	}

	var update domain.ProductUpdate
	if v, err := prompt(r, out, "New Name (blank to keep): "); err == nil && v != "" {
		update.Name = &v
	}
	if v, err := prompt(r, out, "New Description (blank to keep): "); err == nil && v != "" {
		update.Description = &v
	}
	if v, err := prompt(r, out, "New Price (blank to keep): "); err == nil && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			update.Price = &f
		}
	}
	if v, err := prompt(r, out, "New Quantity (blank to keep): "); err == nil && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			update.Quantity = &n
		}
	}

	if err := svc.EditProduct(name, update); err != nil {
		fmt.Fprintf(out, "Failed to edit product: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Product updated successfully.")
}

func deleteInteractive(r *bufio.Reader, out io.Writer) {
	name, err := prompt(r, out, "Product Name to Delete: ")
	if err != nil {
		return
	}
	if err := svc.DeleteProduct(name); err != nil {
		fmt.Fprintf(out, "Failed to delete product: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Product deleted successfully.")
}

func sellInteractive(r *bufio.Reader, out io.Writer) {
	name, err := prompt(r, out, "Product Name: ")
	if err != nil {
		return
	}
	quantity, err := promptInt(r, out, "Quantity Sold: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid quantity: %v\n", err)
		return
	}
	price, err := promptFloat(r, out, "Sale Price: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid price: %v\n", err)
		return
	}

	if err := svc.RecordSale(name, quantity, price); err != nil {
		fmt.Fprintf(out, "Error recording sale: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Sale recorded successfully.")
}

func buyInteractive(r *bufio.Reader, out io.Writer) {
	name, err := prompt(r, out, "Product Name: ")
	if err != nil {
		return
	}
	quantity, err := promptInt(r, out, "Quantity Purchased: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid quantity: %v\n", err)
		return
	}
	price, err := promptFloat(r, out, "Purchase Price: ")
	if err != nil {
		fmt.Fprintf(out, "Invalid price: %v\n", err)
		return
	}

	if err := svc.RecordPurchase(name, quantity, price); err != nil {
		fmt.Fprintf(out, "Error recording purchase: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Purchase recorded successfully.")
}

func generateReport(r *bufio.Reader, out io.Writer) {
	fmt.Fprintln(out, "--- Generate Report ---")
	fmt.Fprintln(out, "1. Inventory Report")
	fmt.Fprintln(out, "2. Sales Report")
	fmt.Fprintln(out, "3. Purchase Report")

	choice, err := prompt(r, out, "Select an option: ")
	if err != nil {
		return
	}
	switch choice {
	case "1":
		fmt.Fprint(out, report.Inventory(svc.Products()))
	case "2":
		fmt.Fprint(out, report.Sales(svc.Sales()))
	case "3":
		fmt.Fprint(out, report.Purchases(svc.Purchases()))
	default:
		fmt.Fprintln(out, "Invalid choice, returning to main menu.")
	}
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptFloat(r *bufio.Reader, out io.Writer, label string) (float64, error) {
	s, err := prompt(r, out, label)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(s, 64)
}

func promptInt(r *bufio.Reader, out io.Writer, label string) (int, error) {
	s, err := prompt(r, out, label)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
