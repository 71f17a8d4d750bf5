package httputil

import (
	"log/slog"
	"net/http"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: msg})
}

func Unauthorized(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("unauthorized", "message", msg, "error", err)
	} else {
		slog.Warn("unauthorized", "message", msg)
	}
	WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: msg})
}

func Forbidden(w http.ResponseWriter, msg string) {
	slog.Warn("forbidden", "message", msg)
	WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: msg})
}
