// Command wishlist is a CLI client for the wishlist API.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/totokartonio/wishlist/internal/client"
	"github.com/totokartonio/wishlist/internal/model"
)

const usage = `Usage: wishlist <command> [flags]

Commands:
  list                      list all items
  get <id>                  show a single item
  add                       add an item (-name, -price, -currency, -link)
  edit <id>                 edit an item (-name, -price, -currency, -link, -status)
  rm <id>                   delete an item
  status <id> <status>      change an item's status (want|bought|archived|reserved)
  health                    check the server

The API address is taken from WISHLIST_API (default http://localhost:3000).
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	baseURL := os.Getenv("WISHLIST_API")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}
	c := client.New(baseURL)
	ctx := context.Background()

	var err error
	switch os.Args[1] {
	case "list":
		err = cmdList(ctx, c)
	case "get":
		err = cmdGet(ctx, c, os.Args[2:])
	case "add":
		err = cmdAdd(ctx, c, os.Args[2:])
	case "edit":
		err = cmdEdit(ctx, c, os.Args[2:])
	case "rm":
		err = cmdRemove(ctx, c, os.Args[2:])
	case "status":
		err = cmdStatus(ctx, c, os.Args[2:])
	case "health":
		err = cmdHealth(ctx, c)
	case "help", "-h", "-help", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n%s", os.Args[1], usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printItems(items []model.Item) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTATUS\tLINK")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\t%s\n",
			item.ID, item.Name, item.Price, item.Currency, item.Status, item.Link)
	}
	w.Flush()
}

func cmdList(ctx context.Context, c *client.Client) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	printItems(items)
	return nil
}

func cmdGet(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: wishlist get <id>")
	}
	item, err := c.Get(ctx, args[0])
	if err != nil {
		return err
	}
	printItems([]model.Item{*item})
	return nil
}

func cmdAdd(ctx context.Context, c *client.Client, args []string) error {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	form := &client.Form{}
	fs.StringVar(&form.Name, "name", "", "item name")
	fs.StringVar(&form.Price, "price", "", "item price")
	fs.StringVar(&form.Currency, "currency", model.CurrencyUSD, "currency (USD|EUR|RUB)")
	fs.StringVar(&form.Link, "link", "", "item link")
	fs.Parse(args)

	if !form.Validate() {
		return fmt.Errorf("%s", form.Err())
	}

	// Snapshot the list first so the mutation can be applied locally.
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	state := client.NewState(items)

	created, err := c.Create(ctx, form.Fields())
	if err != nil {
		return err
	}
	form.Reset()

	state.Add(*created)
	printItems(state.Items())
	return nil
}

func cmdEdit(ctx context.Context, c *client.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: wishlist edit <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	name := fs.String("name", "", "item name")
	price := fs.String("price", "", "item price")
	currency := fs.String("currency", "", "currency (USD|EUR|RUB)")
	link := fs.String("link", "", "item link")
	status := fs.String("status", "", "status (want|bought|archived|reserved)")
	fs.Parse(args[1:])

	var patch model.ItemPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "price":
			v, err := strconv.ParseFloat(*price, 64)
			if err == nil {
				patch.Price = &v
			}
		case "currency":
			patch.Currency = currency
		case "link":
			patch.Link = link
		case "status":
			patch.Status = status
		}
	})

	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	state := client.NewState(items)
	state.StartEdit(id)

	updated, err := c.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	state.Update(*updated)
	printItems(state.Items())
	return nil
}

func cmdRemove(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: wishlist rm <id>")
	}
	id := args[0]

	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	state := client.NewState(items)

	if err := c.Delete(ctx, id); err != nil {
		return err
	}

	state.Delete(id)
	printItems(state.Items())
	return nil
}

func cmdStatus(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: wishlist status <id> <status>")
	}
	id, status := args[0], args[1]

	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	state := client.NewState(items)

	if _, err := c.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	state.ChangeStatus(id, status)
	printItems(state.Items())
	return nil
}

func cmdHealth(ctx context.Context, c *client.Client) error {
	status, err := c.Health(ctx)
	if err != nil {
		return err
	}
	fmt.Println(status)
	return nil
}
