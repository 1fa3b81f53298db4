package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ikkim/phonebook-backend/config"
	"github.com/ikkim/phonebook-backend/internal/app/repository"
	"github.com/ikkim/phonebook-backend/internal/app/service"
	"github.com/ikkim/phonebook-backend/internal/db"
	"github.com/xuri/excelize/v2"
)

// importRow is one data row of the import sheet: phone_number, name, address.
type importRow struct {
	Line  int
	Input service.CreatePhoneInput
}

type importResult struct {
	Created    int
	Duplicates int
	Invalid    int
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run cmd/seed/main.go <xlsx_file_path>")
	}

	filePath := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	conn, err := db.Open(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(conn)

	if err := db.Migrate(conn); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	phoneService := service.NewPhoneService(
		repository.NewPhoneRepository(conn),
		repository.NewReviewRepository(conn),
	)

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	rows, err := readPhonesFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total rows to import: %d\n", len(rows))

	result, err := importPhones(context.Background(), phoneService, rows)
	if err != nil {
		log.Fatal("Import aborted:", err)
	}

	fmt.Println("Import completed successfully!")
	fmt.Printf("Created: %d, duplicates skipped: %d, invalid rows: %d\n",
		result.Created, result.Duplicates, result.Invalid)
}

func readPhonesFromXLSX(filePath string) ([]importRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in XLSX file")
	}

	var out []importRow
	for i, row := range rows {
		// header
		if i == 0 {
			continue
		}
		if len(row) == 0 {
			continue
		}

		out = append(out, importRow{
			Line: i + 1,
			Input: service.CreatePhoneInput{
				PhoneNumber: cell(row, 0),
				Name:        optionalCell(row, 1),
				Address:     optionalCell(row, 2),
			},
		})
	}
	return out, nil
}

// importPhones creates each row through the phone service. Validation failures and
// duplicates are counted and skipped; a storage failure stops the import.
func importPhones(ctx context.Context, phoneService service.PhoneService, rows []importRow) (importResult, error) {
	var result importResult
	for _, row := range rows {
		_, err := phoneService.CreatePhone(ctx, row.Input)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, service.ErrConflict):
			result.Duplicates++
		case errors.Is(err, service.ErrInvalidInput):
			fmt.Printf("Skipping line %d: %v\n", row.Line, err)
			result.Invalid++
		default:
			return result, fmt.Errorf("line %d: %w", row.Line, err)
		}
	}
	return result, nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func optionalCell(row []string, idx int) *string {
	v := cell(row, idx)
	if v == "" {
		return nil
	}
	return &v
}
