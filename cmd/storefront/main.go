// Command storefront is a terminal client for the commerce backend:
// catalog browsing, order placement, and admin-side order/payment
// management, all through the typed API gateway.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	sdkapp "github.com/go-faster/sdk/app"
	"go.uber.org/zap"

	appkg "github.com/xenking/storefront/internal/app"
	"github.com/xenking/storefront/internal/cart"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/payment"
	"github.com/xenking/storefront/internal/domain/product"
)

const usageText = `Usage: storefront <command> [flags]

Commands:
  products      list the catalog (-category, -sort, -order, -search, -low-stock)
  order         place an order: storefront order <productID>:<qty> ...
  orders        list orders (-email for a single customer)
  order-status  change an order's status: storefront order-status <id> <status>
  payments      list payments (-status, -order)
  pay           process a pending payment: storefront pay -yes <id>
  dashboard     show the admin analytics snapshot
`

func main() {
	sdkapp.Run(func(ctx context.Context, lg *zap.Logger, m *sdkapp.Telemetry) error {
		cfg, err := appkg.LoadConfig()
		if err != nil {
			return err
		}
		a, err := appkg.New(m, cfg)
		if err != nil {
			return err
		}

		args := os.Args[1:]
		if len(args) == 0 {
			fmt.Fprint(os.Stderr, usageText)
			return errors.New("missing command")
		}

		switch cmd := args[0]; cmd {
		case "products":
			return runProducts(ctx, a, args[1:])
		case "order":
			return runOrder(ctx, a, args[1:])
		case "orders":
			return runOrders(ctx, a, args[1:])
		case "order-status":
			return runOrderStatus(ctx, a, args[1:])
		case "payments":
			return runPayments(ctx, a, args[1:])
		case "pay":
			return runPay(ctx, a, args[1:])
		case "dashboard":
			return runDashboard(ctx, a)
		default:
			fmt.Fprint(os.Stderr, usageText)
			return errors.Errorf("unknown command %q", cmd)
		}
	})
}

func runProducts(ctx context.Context, a *appkg.App, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category")
	sortBy := fs.String("sort", "", "sort field")
	sortOrder := fs.String("order", "asc", "sort direction (asc|desc)")
	search := fs.String("search", "", "free-text search query")
	lowStock := fs.Int("low-stock", -1, "only products at or below this stock level")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		products []product.Product
		err      error
	)
	switch {
	case *search != "":
		products, err = a.Catalog.Search(ctx, *search)
	case *lowStock >= 0:
		products, err = a.Catalog.LowStock(ctx, *lowStock)
	default:
		products, err = a.Catalog.List(ctx, product.ListOptions{
			Category: *category,
			SortBy:   *sortBy,
			Order:    product.SortOrder(*sortOrder),
		})
	}
	if err != nil {
		return err
	}

	for _, p := range products {
		fmt.Printf("%-26s %-20s %10s  stock %d\n", p.ID, p.Name, "$"+p.Price.StringFixed(2), p.Stock)
	}
	return nil
}

// runOrder builds a cart from productID:qty arguments and submits it on
// behalf of the configured customer.
func runOrder(ctx context.Context, a *appkg.App, args []string) error {
	if len(args) == 0 {
		return errors.New("order requires at least one <productID>:<qty> argument")
	}

	crt := cart.New()
	for _, arg := range args {
		id, qtyStr, ok := strings.Cut(arg, ":")
		qty := 1
		if ok {
			n, err := strconv.Atoi(qtyStr)
			if err != nil {
				return errors.Wrapf(err, "parse quantity in %q", arg)
			}
			qty = n
		}

		p, err := a.Catalog.GetByID(ctx, id)
		if err != nil {
			return err
		}
		crt.Add(*p)
		if qty > 1 {
			crt.SetQuantity(p.ID, qty)
		}
	}

	o, err := a.Composer.Submit(ctx, crt)
	if err != nil {
		return err
	}
	crt.Clear()

	fmt.Printf("Order %s placed: %d items, total $%s, status %s\n",
		o.OrderNumber, len(o.Items), o.TotalAmount.StringFixed(2), o.Status)
	return nil
}

func runOrders(ctx context.Context, a *appkg.App, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	email := fs.String("email", "", "list orders for this customer email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		orders []order.Order
		err    error
	)
	if *email != "" {
		orders, err = a.Orders.ListByCustomer(ctx, *email)
	} else {
		orders, err = a.Orders.List(ctx)
	}
	if err != nil {
		return err
	}

	printOrders(orders)
	return nil
}

func runOrderStatus(ctx context.Context, a *appkg.App, args []string) error {
	if len(args) != 2 {
		return errors.New("order-status requires <orderID> and <status>")
	}

	ctrl := a.OrderStatusController(func(ctx context.Context) error {
		orders, err := a.Orders.List(ctx)
		if err != nil {
			return err
		}
		printOrders(orders)
		return nil
	})

	_, err := ctrl.SetStatus(ctx, args[0], order.Status(args[1]))
	return err
}

func runPayments(ctx context.Context, a *appkg.App, args []string) error {
	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	status := fs.String("status", "", "filter by payment status")
	orderID := fs.String("order", "", "payments for this order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		payments []payment.Payment
		err      error
	)
	switch {
	case *status != "":
		payments, err = a.Payments.ListByStatus(ctx, payment.Status(*status))
	case *orderID != "":
		payments, err = a.Payments.ListByOrder(ctx, *orderID)
	default:
		payments, err = a.Payments.List(ctx)
	}
	if err != nil {
		return err
	}

	printPayments(payments)
	return nil
}

func runPay(ctx context.Context, a *appkg.App, args []string) error {
	fs := flag.NewFlagSet("pay", flag.ContinueOnError)
	yes := fs.Bool("yes", false, "confirm processing without prompting")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("pay requires exactly one <paymentID>")
	}

	proc := a.PaymentProcessor(
		func(_ context.Context, id string) (bool, error) {
			if *yes {
				return true, nil
			}
			fmt.Printf("Process payment %s? This marks it completed and assigns a transaction ID. [y/N] ", id)
			var answer string
			fmt.Scanln(&answer)
			return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes"), nil
		},
		func(ctx context.Context) error {
			payments, err := a.Payments.List(ctx)
			if err != nil {
				return err
			}
			printPayments(payments)
			return nil
		},
	)

	_, err := proc.Process(ctx, fs.Arg(0))
	if errors.Is(err, payment.ErrNotConfirmed) {
		fmt.Println("Aborted.")
		return nil
	}
	return err
}

func runDashboard(ctx context.Context, a *appkg.App) error {
	snap, err := a.Dashboard.Snapshot(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Products: %d\n", snap.TotalProducts)
	fmt.Printf("Orders:   %d  revenue $%s  avg $%s\n",
		snap.Orders.TotalOrders,
		snap.Orders.TotalRevenue.StringFixed(2),
		snap.Orders.AvgOrderValue.StringFixed(2))
	fmt.Printf("Payments: %d  success rate %.1f%%\n",
		snap.Payments.TotalPayments, snap.Payments.SuccessRate)
	fmt.Printf("\nRecent orders (%d):\n", len(snap.OrderList))
	printOrders(snap.OrderList)
	fmt.Printf("\nRecent payments (%d):\n", len(snap.PaymentList))
	printPayments(snap.PaymentList)
	return nil
}

func printOrders(orders []order.Order) {
	for _, o := range orders {
		fmt.Printf("%-12s %-24s %10s  %s\n",
			o.OrderNumber, o.CustomerEmail, "$"+o.TotalAmount.StringFixed(2), o.Status)
	}
}

func printPayments(payments []payment.Payment) {
	for _, p := range payments {
		txn := p.TransactionID
		if txn == "" {
			txn = "N/A"
		}
		fmt.Printf("%-26s %-24s %10s  %-10s %s\n",
			p.ID, p.CustomerEmail, "$"+p.Amount.StringFixed(2), p.Status, txn)
	}
}
