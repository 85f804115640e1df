package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Price <= 0 {
		errs = append(errs, ProductValidationError{Field: "Price", Description: "Price must be greater than zero"})
	}
	if p.Stock < 0 {
		errs = append(errs, ProductValidationError{Field: "Stock", Description: "Stock cannot be negative"})
	}
	if p.CategoryID <= 0 {
		errs = append(errs, ProductValidationError{Field: "CategoryID", Description: "Category is required"})
	}
	return errs
}

func validateCategory(c CategoryRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, ProductValidationError{Field: "Name", Description: "Name is required"})
	}
	return errs
}

func validRole(role string) bool {
	return role == "admin" || role == "user"
}
