package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SadiqNaizam/MLO-a774-fa95/internal/catalog"
	"github.com/SadiqNaizam/MLO-a774-fa95/internal/domain"
)

// Dumps the seeded catalog. Useful for eyeballing what the server will
// serve without starting it.
//
//	go run cmd/list-products/main.go
//	go run cmd/list-products/main.go -search hoodie
//	go run cmd/list-products/main.go -category "Category B" -sort price-asc
func main() {
	search := flag.String("search", "", "only show products whose name matches (case-insensitive)")
	category := flag.String("category", "", "only show products in this category")
	sortKey := flag.String("sort", "relevance", "sort order: relevance, price-asc, price-desc, name-asc")
	flag.Parse()

	key := domain.SortKey(*sortKey)
	if !key.IsValid() {
		fmt.Fprintf(os.Stderr, "unknown sort key %q\n", *sortKey)
		os.Exit(1)
	}

	criteria := catalog.UnboundedCriteria()
	if *category != "" {
		criteria.Categories = map[string]bool{*category: true}
	}

	store := catalog.Seed()
	products := catalog.FilterAndSort(store.All(), criteria, key)

	shown := 0
	for _, p := range products {
		if *search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(*search)) {
			continue
		}
		shown++

		featured := ""
		if p.Featured {
			featured = " [featured]"
		}
		fmt.Printf("%s  %-28s $%s  %s%s\n", p.ID, p.Name, p.Price.StringFixed(2), p.Category, featured)

		if len(p.Sizes) > 0 {
			fmt.Printf("         sizes: %s\n", strings.Join(p.Sizes, ", "))
		}
		for _, c := range p.Colors {
			avail := ""
			if !c.Available {
				avail = " (unavailable)"
			}
			fmt.Printf("         color: %s %s%s\n", c.ID, c.Name, avail)
		}
	}

	fmt.Printf("\n%d of %d products\n", shown, len(store.All()))
}
