package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// SendJSON writes v as the JSON body of a response with the given status.
func SendJSON(w http.ResponseWriter, status int, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(payload)
	return err
}

func SendJSONOrLog(
	w http.ResponseWriter,
	logger *slog.Logger,
	status int,
	v any,
) {
	if err := SendJSON(w, status, v); err != nil {
		logger.Error(
			"failed to send data",
			slog.Any("data", v),
			slog.Any("error", err),
		)
	}
}

type ErrorBody struct {
	Error string `json:"error"`
}

func SendErrorOrLog(
	w http.ResponseWriter,
	logger *slog.Logger,
	status int,
	e error,
) {
	if err := SendJSON(w, status, ErrorBody{e.Error()}); err != nil {
		logger.Error(
			"failed to send error message",
			slog.Any("sent error", e),
			slog.Any("error", err),
		)
	}
}

// InternalError answers 500 without leaking err to the client and logs it.
func InternalError(w http.ResponseWriter, logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.Any("error", err))
	SendJSONOrLog(w, logger, http.StatusInternalServerError, ErrorBody{"internal error"})
}
