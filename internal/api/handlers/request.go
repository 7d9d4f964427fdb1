package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody возвращается при пустом теле запроса
	ErrEmptyBody = errors.New("request body is empty")
)

// DecodeJSON декодирует тело запроса, неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return err
	}
	return nil
}

// QueryDate читает обязательный параметр даты в формате YYYY-MM-DD
func QueryDate(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	return time.Parse(domain.DateFormat, raw)
}

// QueryInt читает целочисленный параметр, def если параметр не передан
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// QueryString читает необязательный строковый параметр
func QueryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}

// PathUUID читает параметр пути и проверяет, что это UUID
func PathUUID(r *http.Request, name string) (string, error) {
	raw := mux.Vars(r)[name]
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return raw, nil
}
