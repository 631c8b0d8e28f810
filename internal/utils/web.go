package utils

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nousrire/backend/internal/errors"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *errors.ErrorWithStatusCode:
		http.Error(w, e.Message, e.StatusCode)
	case *errors.ValidationError:
		http.Error(w, e.Error(), http.StatusBadRequest)
	case *errors.NotFoundError:
		http.Error(w, e.Error(), http.StatusNotFound)
	case *errors.InvalidFormatError:
		http.Error(w, e.Error(), http.StatusUnsupportedMediaType)
	case *errors.FileTooLargeError:
		http.Error(w, e.Error(), http.StatusRequestEntityTooLarge)
	case *errors.DeliveryError:
		http.Error(w, "Could not deliver notification email, please retry", http.StatusBadGateway)
	case *errors.StorageError:
		http.Error(w, "Temporary storage error, please retry", http.StatusInternalServerError)
	default:
		// default error is 500
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		log.Printf("%s", err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		log.Printf("%s", err.Error())
		return &errors.ErrorWithStatusCode{Message: "Required fields missing or malformed", StatusCode: 400}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		log.Printf("%s", err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}
