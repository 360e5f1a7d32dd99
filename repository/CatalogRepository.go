package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"backend/sizing"
	"backend/utils"
)

// CatalogRepository serves the equipment catalogs from Postgres, falling
// back to the built-in factory tables when a table is empty. It
// implements sizing.MachineCatalog, sizing.GasHeaterCatalog and
// sizing.SolarCollectorCatalog, so the engine can be pointed straight at
// it.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Machines returns the heat pump table for the given period.
func (r *CatalogRepository) Machines(ctx context.Context, period sizing.Period) ([]sizing.MachineSpec, error) {
	qctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(qctx, `
		SELECT model, capacity_kw, flow_m3h
		FROM machine_catalog
		WHERE period = $1
		ORDER BY position`, string(period))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch machine catalog: %w", err)
	}
	defer rows.Close()

	var specs []sizing.MachineSpec
	for rows.Next() {
		var m sizing.MachineSpec
		if err := rows.Scan(&m.Model, &m.CapacityKW, &m.FlowM3H); err != nil {
			return nil, fmt.Errorf("failed to scan machine row: %w", err)
		}
		specs = append(specs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return sizing.DefaultMachines(period), nil
	}
	return specs, nil
}

// GasHeaters returns the gas heater catalog.
func (r *CatalogRepository) GasHeaters(ctx context.Context) ([]sizing.GasHeaterSpec, error) {
	qctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(qctx, `
		SELECT model, power_kcal_h FROM gas_heater_catalog ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch gas heater catalog: %w", err)
	}
	defer rows.Close()

	var specs []sizing.GasHeaterSpec
	for rows.Next() {
		var g sizing.GasHeaterSpec
		if err := rows.Scan(&g.Model, &g.PowerKcalH); err != nil {
			return nil, fmt.Errorf("failed to scan gas heater row: %w", err)
		}
		specs = append(specs, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return sizing.DefaultGasHeaters(), nil
	}
	return specs, nil
}

// SolarCollectors returns the collector catalog.
func (r *CatalogRepository) SolarCollectors(ctx context.Context) ([]sizing.SolarCollectorSpec, error) {
	qctx, cancel := utils.GetFastQueryContext(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(qctx, `
		SELECT model, area_m2 FROM solar_collector_catalog ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch solar collector catalog: %w", err)
	}
	defer rows.Close()

	var specs []sizing.SolarCollectorSpec
	for rows.Next() {
		var s sizing.SolarCollectorSpec
		if err := rows.Scan(&s.Model, &s.AreaM2); err != nil {
			return nil, fmt.Errorf("failed to scan collector row: %w", err)
		}
		specs = append(specs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return sizing.DefaultSolarCollectors(), nil
	}
	return specs, nil
}

// SeedCatalogs inserts the factory tables into empty catalog tables so a
// fresh install has data to show and edit. Existing rows are left alone.
func (r *CatalogRepository) SeedCatalogs(ctx context.Context) error {
	qctx, cancel := utils.GetDefaultQueryContext(ctx)
	defer cancel()

	var count int
	if err := r.db.QueryRowContext(qctx, `SELECT COUNT(*) FROM machine_catalog`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count machine catalog: %w", err)
	}
	if count == 0 {
		for _, period := range []sizing.Period{sizing.ColdPeriod, sizing.WarmPeriod} {
			for i, m := range sizing.DefaultMachines(period) {
				_, err := r.db.ExecContext(qctx, `
					INSERT INTO machine_catalog (period, model, capacity_kw, flow_m3h, position)
					VALUES ($1, $2, $3, $4, $5)`,
					string(period), m.Model, m.CapacityKW, m.FlowM3H, i)
				if err != nil {
					return fmt.Errorf("failed to seed machine catalog: %w", err)
				}
			}
		}
		log.Println("Seeded machine catalog with factory tables")
	}

	if err := r.db.QueryRowContext(qctx, `SELECT COUNT(*) FROM gas_heater_catalog`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count gas heater catalog: %w", err)
	}
	if count == 0 {
		for i, g := range sizing.DefaultGasHeaters() {
			_, err := r.db.ExecContext(qctx, `
				INSERT INTO gas_heater_catalog (model, power_kcal_h, position) VALUES ($1, $2, $3)`,
				g.Model, g.PowerKcalH, i)
			if err != nil {
				return fmt.Errorf("failed to seed gas heater catalog: %w", err)
			}
		}
		log.Println("Seeded gas heater catalog with factory tables")
	}

	if err := r.db.QueryRowContext(qctx, `SELECT COUNT(*) FROM solar_collector_catalog`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count solar collector catalog: %w", err)
	}
	if count == 0 {
		for i, s := range sizing.DefaultSolarCollectors() {
			_, err := r.db.ExecContext(qctx, `
				INSERT INTO solar_collector_catalog (model, area_m2, position) VALUES ($1, $2, $3)`,
				s.Model, s.AreaM2, i)
			if err != nil {
				return fmt.Errorf("failed to seed solar collector catalog: %w", err)
			}
		}
		log.Println("Seeded solar collector catalog with factory tables")
	}

	return nil
}
