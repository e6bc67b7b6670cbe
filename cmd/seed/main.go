package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/smreview/smreview-backend/config"
	"github.com/smreview/smreview-backend/internal/app/model"
	"github.com/smreview/smreview-backend/internal/app/repository"
	"github.com/smreview/smreview-backend/internal/db"
)

// Seeds the static catalog and optionally bulk-imports admin reviews
// from an XLSX sheet. Expected columns:
// title | image_url | rating | review | first_half | second_half | positives | negatives | overall
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if !cfg.Database.Configured() {
		log.Fatal("Database is not configured; seeding requires a database")
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	fmt.Println("Seeding static review catalog...")
	if err := db.SeedStaticReviews(db.GetDB()); err != nil {
		log.Fatal("Failed to seed static catalog:", err)
	}
	fmt.Println("Static catalog seeded.")

	if len(os.Args) < 2 {
		return
	}

	filePath := os.Args[1]
	fmt.Printf("Reading XLSX file: %s\n", filePath)
	reviews, err := readReviewsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total reviews to import: %d\n", len(reviews))

	fmt.Print("Do you want to proceed with the import? (yes/no): ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "yes" && confirm != "y" {
		fmt.Println("Import cancelled.")
		return
	}

	reviewRepo := repository.NewReviewRepository(db.GetDB())
	if err := reviewRepo.BulkCreate(reviews, 100); err != nil {
		log.Fatal("Failed to bulk create reviews:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Total reviews imported: %d\n", len(reviews))
}

func readReviewsFromXLSX(filePath string) ([]model.Review, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	fmt.Printf("Reading sheet: %s\n", sheetName)

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var reviews []model.Review
	seenTitles := make(map[string]bool)
	skippedCount := 0

	for i, row := range rows {
		if i == 0 {
			fmt.Printf("Headers: %v\n", row)
			continue
		}

		title := strings.TrimSpace(cell(row, 0))
		if title == "" {
			skippedCount++
			continue
		}
		if seenTitles[title] {
			skippedCount++
			continue
		}
		seenTitles[title] = true

		now := time.Now()
		reviews = append(reviews, model.Review{
			ID:         uuid.NewString(),
			Title:      title,
			ImageURL:   strings.TrimSpace(cell(row, 1)),
			Rating:     strings.TrimSpace(cell(row, 2)),
			Review:     strings.TrimSpace(cell(row, 3)),
			FirstHalf:  strings.TrimSpace(cell(row, 4)),
			SecondHalf: strings.TrimSpace(cell(row, 5)),
			Positives:  strings.TrimSpace(cell(row, 6)),
			Negatives:  strings.TrimSpace(cell(row, 7)),
			Overall:    strings.TrimSpace(cell(row, 8)),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	if skippedCount > 0 {
		fmt.Printf("Skipped rows: %d\n", skippedCount)
	}
	return reviews, nil
}

// cell reads a column by index; excelize omits trailing empty cells
func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
