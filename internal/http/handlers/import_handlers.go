package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rogerio-castellano/pubstock/internal/models"
)

type csvRow struct {
	Name      string
	Quantity  int
	Threshold int
	Category  string
	Price     decimal.Decimal
}

func (r csvRow) input() models.ProductInput {
	return models.ProductInput{
		Name:         r.Name,
		Quantity:     r.Quantity,
		MinThreshold: r.Threshold,
		Category:     r.Category,
		Price:        r.Price,
	}
}

func parseCSV(src io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(src)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["threshold"]; !ok {
		if i, ok := index["min_threshold"]; ok {
			index["threshold"] = i
		}
	}
	if _, ok := index["name"]; !ok {
		return nil, fmt.Errorf("CSV header must contain a name column")
	}

	field := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		row := csvRow{
			Name:      field(record, "name"),
			Quantity:  parseInt(field(record, "quantity")),
			Threshold: parseInt(field(record, "threshold")),
			Category:  field(record, "category"),
			Price:     parseDecimal(field(record, "price")),
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	req := ProductRequest{Name: r.Name, Quantity: r.Quantity, MinThreshold: r.Threshold, Category: r.Category, Price: r.Price}
	if errs := validateProduct(req); len(errs) > 0 {
		return errors.New(strings.ToLower(errs[0].Description))
	}
	if r.Quantity < 0 {
		return errors.New("invalid quantity")
	}
	if r.Threshold < 0 {
		return errors.New("invalid threshold")
	}
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

// csvReader decodes legacy spreadsheet exports to UTF-8.
func csvReader(src io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		return src, nil
	case "windows-1252", "cp1252":
		return transform.NewReader(src, charmap.Windows1252.NewDecoder()), nil
	case "iso-8859-1", "latin1":
		return transform.NewReader(src, charmap.ISO8859_1.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported charset %q", charset)
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description Columns: name, quantity, min_threshold (or threshold), category, price. Existing products are matched by name.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Param charset query string false "File encoding (utf-8|windows-1252|iso-8859-1)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /products/import [post]
func ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	src, err := csvReader(file, r.URL.Query().Get("charset"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := parseCSV(src)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	byName := map[string]models.Product{}
	for _, p := range store.Products() {
		byName[strings.ToLower(p.Name)] = p
	}

	imported := 0
	errorsList := []ProductValidationError{}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: %v", rowNum, err)})
			continue
		}

		if existing, ok := byName[strings.ToLower(rec.Name)]; ok {
			if mode == "skip" {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: product '%s' already exists", rowNum, rec.Name)})
				continue
			}
			if err := store.Update(r.Context(), existing.ID, rec.input()); err != nil {
				errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: failed to update '%s'", rowNum, rec.Name)})
				continue
			}
			imported++
			continue
		}

		created, err := store.Create(r.Context(), rec.input())
		if err != nil {
			errorsList = append(errorsList, ProductValidationError{Description: fmt.Sprintf("row %d: failed to add '%s'", rowNum, rec.Name)})
			continue
		}
		byName[strings.ToLower(created.Name)] = created
		imported++
	}

	respondJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
