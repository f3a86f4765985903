package api

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vytor/eligesaludable/internal/errors"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type registerPlayerRequest struct {
	Nombre string `json:"nombre" validate:"required,max=100"`
}

type startSessionRequest struct {
	JugadorID      int64 `json:"jugador_id" validate:"required,gt=0"`
	VidasIniciales int   `json:"vidas_iniciales" validate:"gte=0,lte=10"`
}

type submitAnswerRequest struct {
	PartidaID  int64     `json:"partida_id" validate:"required,gt=0"`
	NivelID    int64     `json:"nivel_id" validate:"required,gt=0"`
	AlimentoID int64     `json:"alimento_id" validate:"required,gt=0"`
	Correcta   *flexBool `json:"correcta" validate:"required"`
	Tiempo     *float64  `json:"tiempo" validate:"required"`
}

type finalizeRequest struct {
	NivelMaximo int `json:"nivel_maximo" validate:"gte=0"`
}

type finalizeSessionRequest struct {
	PartidaID   int64 `json:"partida_id" validate:"required,gt=0"`
	NivelMaximo int   `json:"nivel_maximo" validate:"gte=0"`
}

// flexBool accepts JSON booleans as well as 0/1 and their string forms,
// which older game clients send for "correcta".
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(data)), `"`) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid boolean: %s", data)
	}
	return nil
}

// decodeJSON decodes and validates the request body into dst. An empty body
// is accepted only when allowEmpty is set, leaving dst at its zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if stderrors.Is(err, io.EOF) && allowEmpty {
			return validateRequest(dst)
		}
		if stderrors.Is(err, io.EOF) {
			return errors.NewBadRequestError("request body is required")
		}
		return errors.NewBadRequestError("invalid JSON body")
	}
	return validateRequest(dst)
}

func validateRequest(dst any) error {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return errors.NewValidationError(fe.Field(), failedRule(fe))
	}
	return errors.NewBadRequestError(err.Error())
}

func failedRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte", "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
