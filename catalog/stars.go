package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

//go:embed stars.csv
var defaultStarsCSV []byte

// StarRecord is one row of the star table. Metallicity is optional in
// the CSV; a nil value means the generator rolls one for the system.
type StarRecord struct {
	ID            uint64   `csv:"id"`
	Name          string   `csv:"name"`
	LuminositySol float64  `csv:"luminosity_sol"`
	Spectral      string   `csv:"spectral"`
	Metallicity   *float64 `csv:"metallicity,omitempty"`
}

// LoadStars reads the star table from path, or the embedded nearby-star
// table when path is empty.
func LoadStars(path string) ([]StarRecord, error) {
	data := defaultStarsCSV
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading star table: %w", err)
		}
	}

	var records []StarRecord
	if err := gocsv.Unmarshal(bytes.NewReader(data), &records); err != nil {
		return nil, fmt.Errorf("parsing star table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("star table is empty")
	}

	seen := make(map[uint64]string, len(records))
	for _, r := range records {
		if r.Name == "" {
			return nil, fmt.Errorf("star id %d: missing name", r.ID)
		}
		if prev, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("star %q: id %d already used by %q", r.Name, r.ID, prev)
		}
		seen[r.ID] = r.Name
		if r.LuminositySol <= 0 {
			return nil, fmt.Errorf("star %q: luminosity must be positive, got %v",
				r.Name, r.LuminositySol)
		}
	}
	return records, nil
}
