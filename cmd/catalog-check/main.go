package main

import (
	"fmt"
	"os"

	"github.com/acaidecasa/storefront/internal/catalog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/catalog-check/main.go <catalog.json>")
		fmt.Println("Validates a catalog override file before pointing CATALOG_FILE at it.")
		os.Exit(1)
	}

	path := os.Args[1]

	cat, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catalog file rejected: %v\n", err)
		os.Exit(1)
	}

	groups := 0
	options := 0
	for _, p := range cat.Products() {
		groups += len(p.ToppingGroups)
		for _, g := range p.ToppingGroups {
			options += len(g.Options)
		}
	}

	fmt.Printf("Catalog OK: %s\n\n", path)
	fmt.Printf("Categories: %d\n", len(cat.Categories()))
	fmt.Printf("Products: %d\n", len(cat.Products()))
	fmt.Printf("Topping groups: %d\n", groups)
	fmt.Printf("Topping options: %d\n", options)
}
