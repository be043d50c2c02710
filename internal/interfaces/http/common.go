package http

import (
	"errors"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stocktrack-api/internal/application/dto"
	"github.com/jhoicas/stocktrack-api/internal/domain"
)

// renderError traduce errores del motor al cuerpo {title, message} que el
// front end renderiza como diálogo. Los rechazos de negocio llevan su estatus
// según el tipo; los fallos de almacenamiento se reportan genéricos, sin
// filtrar detalles internos.
func renderError(c *fiber.Ctx, err error) error {
	if rej, ok := domain.AsRejection(err); ok {
		return c.Status(rejectionStatus(rej.Kind)).JSON(dto.ErrorResponse{
			Title:   rej.Title,
			Message: rej.Message,
		})
	}
	if errors.Is(err, domain.ErrUnsupportedEntityKind) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Title:   "Error interno",
			Message: "tipo de entidad no soportado",
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Title:   "Error de base de datos",
		Message: "no fue posible completar la operación",
	})
}

func rejectionStatus(kind domain.RejectKind) int {
	switch kind {
	case domain.KindDuplicateName, domain.KindReferencedByInventory:
		return fiber.StatusConflict
	case domain.KindReferenceNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusBadRequest
	}
}

// invalidParams responde el diálogo de parámetros inválidos sin tocar el motor.
func invalidParams(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Title:   "Parámetros inválidos",
		Message: msg,
	})
}

// isValidName acepta solo alfanuméricos y espacios, igual que la validación
// de entrada de la UI original.
func isValidName(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// queryPtr devuelve un puntero al parámetro de query si viene no vacío.
func queryPtr(c *fiber.Ctx, key string) *string {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	return &v
}
