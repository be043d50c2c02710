package domain

import "errors"

// RejectKind clasifica los rechazos de regla de negocio esperados.
type RejectKind string

const (
	KindMissingField          RejectKind = "MISSING_FIELD"
	KindDuplicateName         RejectKind = "DUPLICATE_NAME"
	KindReferenceNotFound     RejectKind = "REFERENCE_NOT_FOUND"
	KindReferencedByInventory RejectKind = "REFERENCED_BY_INVENTORY"
	KindNoChangeRequested     RejectKind = "NO_CHANGE_REQUESTED"
)

// ErrUnsupportedEntityKind indica que el dispatcher recibió un tipo de request
// desconocido. Es un error de programación, no un rechazo de negocio: se
// propaga como fallo duro.
var ErrUnsupportedEntityKind = errors.New("tipo de entidad no soportado")

// Rejection es el rechazo estructurado que consume el front end para mostrar
// un diálogo: título + mensaje. Implementa error pero no representa un fallo
// de almacenamiento; los callers lo distinguen con AsRejection.
type Rejection struct {
	Kind    RejectKind
	Title   string
	Message string
}

func (r *Rejection) Error() string {
	return r.Title + ": " + r.Message
}

// AsRejection devuelve el rechazo de negocio contenido en err, si lo hay.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// Constructores por tipo de rechazo. El título es el que la UI usa como
// encabezado del diálogo.

func NewMissingField(msg string) *Rejection {
	return &Rejection{Kind: KindMissingField, Title: "Parámetros inválidos", Message: msg}
}

func NewDuplicateName(msg string) *Rejection {
	return &Rejection{Kind: KindDuplicateName, Title: "Nombre duplicado", Message: msg}
}

func NewReferenceNotFound(msg string) *Rejection {
	return &Rejection{Kind: KindReferenceNotFound, Title: "Referencia no encontrada", Message: msg}
}

func NewReferencedByInventory(msg string) *Rejection {
	return &Rejection{Kind: KindReferencedByInventory, Title: "Eliminación bloqueada", Message: msg}
}

func NewNoChangeRequested(msg string) *Rejection {
	return &Rejection{Kind: KindNoChangeRequested, Title: "Sin cambios", Message: msg}
}
