package router

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/Takumouse/sales-dashboard2/internal/dashboard"
)

const maxCommandSize = 1 << 16

func (router *router) homeHandler(w http.ResponseWriter, _ *http.Request) {
	data := newHomeData(router.controller.Snapshot())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTempl.Execute(w, data); err != nil {
		router.logger.Error("Failed to render dashboard", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func (router *router) dashboardHandler(w http.ResponseWriter, _ *http.Request) {
	router.writeJSON(w, http.StatusOK, router.controller.Snapshot())
}

// commandHandler accepts a JSON command and answers with the new snapshot, or
// a form post from the HTML page and redirects back to it.
func (router *router) commandHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxCommandSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	isJSON := mediaType == "application/json"

	var cmd dashboard.Command
	var err error
	if isJSON {
		var body []byte
		body, err = io.ReadAll(r.Body)
		if err == nil {
			cmd, err = dashboard.DecodeCommand(body)
		}
	} else {
		err = r.ParseForm()
		if err == nil {
			cmd, err = dashboard.ParseCommand(r.PostForm)
		}
	}

	if err == nil {
		var snapshot dashboard.Snapshot
		snapshot, err = router.controller.Dispatch(r.Context(), cmd)
		if err == nil {
			if isJSON {
				router.writeJSON(w, http.StatusOK, snapshot)
			} else {
				http.Redirect(w, r, "/", http.StatusSeeOther)
			}
			return
		}
	}

	router.logger.Debug("Invalid command", "error", err)

	status := http.StatusBadRequest
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		status = http.StatusRequestEntityTooLarge
	}

	if isJSON {
		router.writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}

	http.Error(w, err.Error(), status)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (router *router) writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(value); err != nil {
		router.logger.Error("Failed to encode JSON response", "error", err)
	}
}
