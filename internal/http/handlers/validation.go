package handlers

import "strings"

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price.IsNegative() {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if !p.Price.Equal(p.Price.Round(2)) {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price cannot have more than two decimal places"})
	}
	return errs
}
