package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jlin/peacepet-backend/config"
	"github.com/jlin/peacepet-backend/internal/app/model"
	"github.com/jlin/peacepet-backend/internal/app/repository"
	"github.com/jlin/peacepet-backend/internal/db"
	"github.com/jlin/peacepet-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Imports an initial catalog from an XLSX workbook with two sheets:
//
//	categories: name_en | name_zh | slug | sort_order
//	products:   category_slug | title_en | title_zh | price | description_en | description_zh | is_new | is_deal | is_featured
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		log.Fatal("Failed to open XLSX file:", err)
	}
	defer f.Close()

	categories, err := readCategories(f)
	if err != nil {
		log.Fatal("Failed to read categories sheet:", err)
	}
	products, err := readProducts(f)
	if err != nil {
		log.Fatal("Failed to read products sheet:", err)
	}

	fmt.Printf("Categories to import: %d, products: %d\n", len(categories), len(products))
	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	slugToID := make(map[string]uint, len(categories))
	for i := range categories {
		if err := categoryRepo.Create(&categories[i]); err != nil {
			log.Fatal("Failed to create category:", err)
		}
		slugToID[categories[i].Slug] = categories[i].ID
	}

	imported := 0
	for i := range products {
		categoryID, ok := slugToID[products[i].Category.Slug]
		if !ok {
			fmt.Printf("Skipping product %q: unknown category slug %q\n",
				products[i].TitleEN, products[i].Category.Slug)
			continue
		}
		products[i].CategoryID = categoryID
		products[i].Category = nil
		if err := productRepo.Create(&products[i]); err != nil {
			log.Fatal("Failed to create product:", err)
		}
		imported++
	}

	fmt.Printf("Import completed: %d categories, %d products\n", len(categories), imported)
}

func readCategories(f *excelize.File) ([]model.Category, error) {
	rows, err := f.GetRows("categories")
	if err != nil {
		return nil, err
	}

	var categories []model.Category
	for i, row := range rows {
		if i == 0 || len(row) == 0 { // skip header and blank lines
			continue
		}
		categories = append(categories, model.Category{
			NameEN:    cell(row, 0),
			NameZH:    cell(row, 1),
			Slug:      util.Slugify(cell(row, 2)),
			SortOrder: cellInt(row, 3),
		})
	}
	return categories, nil
}

func readProducts(f *excelize.File) ([]model.Product, error) {
	rows, err := f.GetRows("products")
	if err != nil {
		return nil, err
	}

	var products []model.Product
	for i, row := range rows {
		if i == 0 || len(row) == 0 {
			continue
		}
		price, _ := strconv.ParseFloat(cell(row, 3), 64)
		products = append(products, model.Product{
			Category:      &model.Category{Slug: util.Slugify(cell(row, 0))},
			TitleEN:       cell(row, 1),
			TitleZH:       cell(row, 2),
			Price:         price,
			DescriptionEN: cell(row, 4),
			DescriptionZH: cell(row, 5),
			AvgRating:     5.0,
			IsNew:         cellBool(row, 6),
			IsDeal:        cellBool(row, 7),
			IsFeatured:    cellBool(row, 8),
		})
	}
	return products, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func cellInt(row []string, idx int) int {
	value, _ := strconv.Atoi(cell(row, idx))
	return value
}

func cellBool(row []string, idx int) bool {
	v := strings.ToLower(cell(row, idx))
	return v == "1" || v == "true" || v == "yes"
}
