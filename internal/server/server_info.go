package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/sonicdash/sonic/internal/server/httpx"
	"github.com/sonicdash/sonic/internal/version"
)

func serverInfoHandler(w http.ResponseWriter, r *http.Request) {
	host, _ := os.Hostname()
	host = strings.TrimSpace(host)
	build := version.Get()
	httpx.WriteJSON(w, http.StatusOK, serverInfoResponse{
		Name:       "sonic",
		APIVersion: 1,
		Version:    build.Version,
		Commit:     build.Commit,
		BuildDate:  build.BuildDate,
		Hostname:   host,
	})
}
