package outages

import (
	"encoding/json"
	"os"

	"github.com/abirh2/NYC-Transit-Hub-sub001/pkg/subway"

	"github.com/rs/zerolog/log"
)

// LoadFile reads an outage feed snapshot from a json array file. In production
// the records arrive from the ingestion collaborator already typed; the file
// form exists for the CLI and tests.
func LoadFile(path string) ([]subway.EquipmentOutage, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []subway.EquipmentOutage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}

	log.Info().Str("file", path).Int("records", len(records)).Msg("Loaded outage snapshot")

	return records, nil
}
