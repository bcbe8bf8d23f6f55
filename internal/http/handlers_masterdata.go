package httpx

import (
	"net/http"

	"github.com/zivilschutz/schutzraum-api/internal/domain/model"
)

// Master data endpoints serve the fixed label tables the frontend
// renders pickers from. The tables are compiled in, so these handlers
// have no service behind them.

// MasterDataShelterTypes returns shelter type metadata.
// GET /api/masterdata/shelter-types.
func MasterDataShelterTypes(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"data": model.ShelterTypes()})
}

// MasterDataShelterStatuses returns shelter status metadata.
// GET /api/masterdata/shelter-statuses.
func MasterDataShelterStatuses(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"data": model.ShelterStatuses()})
}

// MasterDataGermanStates returns the sixteen federal states.
// GET /api/masterdata/german-states.
func MasterDataGermanStates(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{"data": model.GermanStates()})
}

// healthHandler reports liveness.
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
