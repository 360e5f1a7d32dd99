package repository

import (
	"context"
	"database/sql"
	"fmt"

	"backend/models"
	"backend/sizing"
	"backend/utils"
)

// ClimateRepository serves city climate data from the cities and
// city_climate tables. It implements sizing.ClimateRepository.
type ClimateRepository struct {
	db *sql.DB
}

func NewClimateRepository(db *sql.DB) *ClimateRepository {
	return &ClimateRepository{db: db}
}

// CityClimate returns a city's name and twelve-month climate table.
func (r *ClimateRepository) CityClimate(ctx context.Context, cityID int) (sizing.CityClimate, error) {
	qctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	var name string
	err := r.db.QueryRowContext(qctx, `SELECT name FROM cities WHERE id = $1`, cityID).Scan(&name)
	if err != nil {
		return sizing.CityClimate{}, fmt.Errorf("failed to fetch city %d: %w", cityID, err)
	}

	rows, err := r.db.QueryContext(qctx, `
		SELECT month, temperature, solar_radiation, wind_speed
		FROM city_climate
		WHERE city_id = $1
		ORDER BY id`, cityID)
	if err != nil {
		return sizing.CityClimate{}, fmt.Errorf("failed to fetch climate for city %d: %w", cityID, err)
	}
	defer rows.Close()

	city := sizing.CityClimate{Name: name}
	for rows.Next() {
		var mc sizing.MonthlyClimate
		var month string
		if err := rows.Scan(&month, &mc.Temperature, &mc.SolarRadiation, &mc.WindSpeed); err != nil {
			return sizing.CityClimate{}, fmt.Errorf("failed to scan climate row: %w", err)
		}
		mc.Month = sizing.Month(month)
		city.MonthlyData = append(city.MonthlyData, mc)
	}
	if err := rows.Err(); err != nil {
		return sizing.CityClimate{}, err
	}
	return city, nil
}

// FindCityByName resolves a city id from a possibly accented, mixed-case
// name. Lookup is accent-insensitive on both sides.
func (r *ClimateRepository) FindCityByName(ctx context.Context, name string) (*models.City, error) {
	qctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(qctx, `SELECT id, name, state FROM cities ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	want := sizing.NormalizeCityName(name)
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		if sizing.NormalizeCityName(c.Name) == want {
			return &c, nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nil, sql.ErrNoRows
}
