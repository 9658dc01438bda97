package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceDetailsValidate(t *testing.T) {
	tests := []struct {
		name        string
		details     *InvoiceDetails
		expectedErr string
	}{
		{
			name:    "valid details",
			details: &InvoiceDetails{Number: "FAC-001", ImageURL: "https://cdn.example.com/fac-001.jpg"},
		},
		{
			name:    "number at minimum length",
			details: &InvoiceDetails{Number: "001", ImageURL: "http://cdn.example.com/a.png"},
		},
		{
			name:        "nil details",
			details:     nil,
			expectedErr: "El número de factura debe tener al menos 3 caracteres",
		},
		{
			name:        "number too short",
			details:     &InvoiceDetails{Number: "01", ImageURL: "https://cdn.example.com/a.png"},
			expectedErr: "El número de factura debe tener al menos 3 caracteres",
		},
		{
			name:        "number of spaces only",
			details:     &InvoiceDetails{Number: "    ", ImageURL: "https://cdn.example.com/a.png"},
			expectedErr: "El número de factura debe tener al menos 3 caracteres",
		},
		{
			name:        "missing image URL",
			details:     &InvoiceDetails{Number: "FAC-001"},
			expectedErr: "La imagen de la factura debe ser una URL válida",
		},
		{
			name:        "relative image URL",
			details:     &InvoiceDetails{Number: "FAC-001", ImageURL: "/uploads/fac.jpg"},
			expectedErr: "La imagen de la factura debe ser una URL válida",
		},
		{
			name:        "non-http scheme",
			details:     &InvoiceDetails{Number: "FAC-001", ImageURL: "ftp://cdn.example.com/fac.jpg"},
			expectedErr: "La imagen de la factura debe ser una URL válida",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.details.Validate()
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.expectedErr, vErr.Message)
		})
	}
}
