package handlers

import (
	"log"
	"net/http"

	"github.com/camden-git/hackerdb/models"
	"github.com/camden-git/hackerdb/repository"
)

type HardwareHandler struct {
	Hardware repository.HardwareRepositoryInterface
}

func (hh *HardwareHandler) ListHardware(w http.ResponseWriter, r *http.Request) {
	hardware, err := hh.Hardware.ListAll()
	if err != nil {
		log.Printf("Error listing hardware: %v", err)
		writeStoreError(w, "hardware")
		return
	}
	if hardware == nil {
		hardware = []models.Hardware{}
	}
	writeJSON(w, http.StatusOK, hardware)
}
