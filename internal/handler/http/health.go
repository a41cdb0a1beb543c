package http

import (
	"net/http"

	"github.com/MKhiriev/aura-portal/internal/logger"
	"github.com/MKhiriev/aura-portal/internal/utils"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, err := utils.WriteJSON(w, healthResponse{
		Status:  "ok",
		Version: h.buildInfo.BuildVersion(),
		Commit:  h.buildInfo.BuildCommit(),
	}, http.StatusOK)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
