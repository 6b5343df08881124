package entries

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/inventory"
)

// ValidateDate exige un día calendario "YYYY-MM-DD" válido.
func ValidateDate(raw string) error {
	if len(raw) != len(inventory.DateLayout) {
		return fmt.Errorf("%w: fecha debe tener formato YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if _, ok := inventory.ParseDay(raw); !ok {
		return fmt.Errorf("%w: fecha inexistente %q", domain.ErrInvalidInput, raw)
	}
	return nil
}

func validateID(field, raw string) error {
	if _, err := uuid.Parse(raw); err != nil {
		return fmt.Errorf("%w: %s debe ser un UUID", domain.ErrInvalidInput, field)
	}
	return nil
}

func validatePackages(packages int) error {
	if packages < 0 {
		return fmt.Errorf("%w: paquetes no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// normalizeNotes recorta espacios; una nota vacía se guarda como NULL.
func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
