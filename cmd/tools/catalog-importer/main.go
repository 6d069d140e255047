// cmd/tools/catalog-importer/main.go

// catalog-importer validates and imports size-chart documents into the
// catalog database. Product catalog JSON exports can be validated too.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"fitting-engine/internal/common/config"
	"fitting-engine/internal/common/validation"
	"fitting-engine/pkg/chartfile"
)

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Validate command flags
	chartPath := validateCmd.String("chart", "", "Path to size chart JSON document")
	productsPath := validateCmd.String("products", "", "Path to product catalog JSON export")

	// Import command flags
	importPath := importCmd.String("chart", "", "Path to size chart JSON document")
	truncate := importCmd.Bool("truncate", false, "Clear the sizes table before import")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if *chartPath == "" && *productsPath == "" {
			fmt.Println("Error: pass -chart and/or -products to validate.")
			validateCmd.Usage()
			os.Exit(1)
		}
		if *chartPath != "" {
			doc, err := chartfile.Load(*chartPath)
			if err != nil {
				fmt.Printf("Size chart invalid: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("Size chart OK: %d sizes (version %s)\n", len(doc.Sizes), doc.Version)
		}
		if *productsPath != "" {
			data, err := os.ReadFile(*productsPath)
			if err != nil {
				fmt.Printf("Error reading products file: %v\n", err)
				os.Exit(1)
			}
			if err := validation.ValidateProductCatalog(data); err != nil {
				fmt.Printf("Product catalog invalid: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Product catalog OK")
		}

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importPath == "" {
			fmt.Println("Error: -chart is required for import.")
			importCmd.Usage()
			os.Exit(1)
		}
		if err := importChart(*importPath, *truncate); err != nil {
			fmt.Printf("Import failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Size chart imported")

	default:
		help()
		os.Exit(1)
	}
}

func importChart(path string, truncate bool) error {
	doc, err := chartfile.Load(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.Postgres.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if truncate {
		if _, err := tx.ExecContext(ctx, `DELETE FROM sizes`); err != nil {
			return err
		}
	}

	for _, s := range doc.Sizes {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO sizes (name, chest_min, chest_max, waist_min, waist_max)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO UPDATE SET
				chest_min = EXCLUDED.chest_min,
				chest_max = EXCLUDED.chest_max,
				waist_min = EXCLUDED.waist_min,
				waist_max = EXCLUDED.waist_max`,
			s.Name, s.ChestMin, s.ChestMax, s.WaistMin, s.WaistMax)
		if err != nil {
			return fmt.Errorf("insert size %s: %w", s.Name, err)
		}
	}

	return tx.Commit()
}

func help() {
	fmt.Println("Usage: catalog-importer <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate -chart <file> [-products <file>]   Validate catalog documents")
	fmt.Println("  import -chart <file> [-truncate]            Import a size chart into the database")
}
