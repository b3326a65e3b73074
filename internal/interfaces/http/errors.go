package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// statusFor traduce el tipo de falla del dominio a un código HTTP.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindInvalidInput:
		return fiber.StatusBadRequest
	case domain.KindDuplicate:
		return fiber.StatusConflict
	case domain.KindCategoryCycle, domain.KindCategoryDepth:
		return fiber.StatusUnprocessableEntity
	case domain.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// messages texto público por tipo; el error crudo del almacén nunca sale al cliente.
var messages = map[domain.Kind]string{
	domain.KindNotFound:         "recurso no encontrado",
	domain.KindInvalidInput:     "datos inválidos",
	domain.KindDuplicate:        "el recurso ya existe",
	domain.KindCategoryCycle:    "el grafo de categorías contiene un ciclo",
	domain.KindCategoryDepth:    "el grafo de categorías excede la profundidad permitida",
	domain.KindStoreUnavailable: "almacén de datos no disponible, intente más tarde",
	domain.KindCorruptData:      "dato almacenado corrupto",
	domain.KindPartialWrite:     "la escritura falló y fue revertida",
}

func errorBody(err error) (int, *dto.ErrorResponse) {
	kind := domain.KindOf(err)
	msg, ok := messages[kind]
	if !ok {
		msg = "error interno"
	}
	return statusFor(kind), &dto.ErrorResponse{Code: string(kind), Message: msg}
}

// logFailure registra la falla con su tipo; las de validación van a nivel debug.
func logFailure(c *fiber.Ctx, op string, err error) {
	log := requestLogger(c)
	kind := domain.KindOf(err)
	ev := log.Error()
	if kind == domain.KindInvalidInput || kind == domain.KindNotFound {
		ev = log.Debug()
	}
	ev.Err(err).Str("op", op).Str("kind", string(kind)).Msg("operación fallida")
}

// writeFailed responde success=false para una escritura fallida.
func writeFailed(c *fiber.Ctx, op string, err error) error {
	logFailure(c, op, err)
	status, body := errorBody(err)
	return c.Status(status).JSON(dto.WriteResponse{Success: false, Code: body.Code, Message: body.Message})
}

// readFailed responde con el error tipado; el cuerpo lo arma el handler (listas vacías).
func readFailed(c *fiber.Ctx, op string, err error, build func(e *dto.ErrorResponse) any) error {
	logFailure(c, op, err)
	status, body := errorBody(err)
	return c.Status(status).JSON(build(body))
}
