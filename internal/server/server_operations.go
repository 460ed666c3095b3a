package server

import (
	"log/slog"
	"net/http"

	"github.com/sonicdash/sonic/internal/server/httpx"
	"github.com/sonicdash/sonic/internal/store"
)

type operationsResponse struct {
	Operations []store.Operation `json:"operations"`
}

func (s *stateStore) operationsHandler(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r.URL.Query().Get("limit"), 50, 500)
	ops, err := s.db.ListOperations(r.Context(), limit)
	if err != nil {
		slog.Error("list operations", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, operationsResponse{Operations: ops})
}
