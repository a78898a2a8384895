// SPDX-License-Identifier: MIT

package requests

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/geo"
)

// Decode reads and validates one JSON document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validator.New().Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &doc, nil
}

// Encode writes responses to w as an indented JSON array.
func Encode(w io.Writer, responses []Response) error {
	if responses == nil {
		responses = []Response{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")

	return enc.Encode(responses)
}

// ApplyBase loads base requests into db: every stop first, then every road
// distance, then every bus, so requests may reference stops declared later
// in the document. Non-roundtrip bus routes are expanded to include the way
// back.
func ApplyBase(db *catalogue.Database, reqs []BaseRequest) error {
	for _, r := range reqs {
		if r.Type != TypeStop {
			continue
		}
		if _, err := db.AddStop(r.Name, geo.Coordinates{Lat: r.Latitude, Lng: r.Longitude}); err != nil {
			return err
		}
	}

	for _, r := range reqs {
		if r.Type != TypeStop {
			continue
		}
		// map order is random; sort for a reproducible distance table
		to := make([]string, 0, len(r.RoadDistances))
		for name := range r.RoadDistances {
			to = append(to, name)
		}
		slices.Sort(to)
		for _, name := range to {
			if err := db.SetMeasuredDistance(r.Name, name, r.RoadDistances[name]); err != nil {
				return fmt.Errorf("road distances of %q: %w", r.Name, err)
			}
		}
	}

	for _, r := range reqs {
		if r.Type != TypeBus {
			continue
		}
		if _, err := db.AddBus(r.Name, catalogue.ExpandRoute(r.Stops, r.IsRoundtrip), r.IsRoundtrip); err != nil {
			return err
		}
	}

	return nil
}
