package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"backend/models"
	"backend/repository"

	"github.com/gin-gonic/gin"
)

// CreateCity godoc
// @Summary      Create city
// @Tags         cities
// @Accept       json
// @Produce      json
// @Param        body  body      models.City  true  "City"
// @Success      201   {object}  models.City
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/cities [post]
func CreateCity(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var city models.City
		if err := c.ShouldBindJSON(&city); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		query := `INSERT INTO cities (name, state) VALUES ($1, $2) RETURNING id`
		if err := db.QueryRow(query, city.Name, city.State).Scan(&city.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, city)
	}
}

// GetCities godoc
// @Summary      List cities
// @Tags         cities
// @Success      200  {array}  models.City
// @Router       /api/cities [get]
func GetCities(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := db.Query(`SELECT id, name, state FROM cities ORDER BY name`)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer rows.Close()

		var cities []models.City
		for rows.Next() {
			var city models.City
			if err := rows.Scan(&city.ID, &city.Name, &city.State); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			cities = append(cities, city)
		}

		c.JSON(http.StatusOK, cities)
	}
}

// GetCityClimate godoc
// @Summary      Get city with monthly climate
// @Tags         cities
// @Param        id   path      int  true  "City ID"
// @Success      200  {object}  models.CityWithClimate
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/cities/{id}/climate [get]
func GetCityClimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid city id"})
			return
		}

		var city models.City
		err = db.QueryRow(`SELECT id, name, state FROM cities WHERE id = $1`, id).
			Scan(&city.ID, &city.Name, &city.State)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		rows, err := db.Query(`
			SELECT id, city_id, month, temperature, solar_radiation, wind_speed
			FROM city_climate WHERE city_id = $1 ORDER BY id`, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer rows.Close()

		var monthly []models.CityClimateRow
		for rows.Next() {
			var row models.CityClimateRow
			if err := rows.Scan(&row.ID, &row.CityID, &row.Month, &row.Temperature, &row.SolarRadiation, &row.WindSpeed); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			monthly = append(monthly, row)
		}

		c.JSON(http.StatusOK, models.CityWithClimate{City: city, MonthlyData: monthly})
	}
}

// UpsertCityClimate godoc
// @Summary      Replace the monthly climate rows of a city
// @Tags         cities
// @Param        id    path  int                     true  "City ID"
// @Param        body  body  []models.CityClimateRow  true  "Monthly rows"
// @Success      200   {object}  models.MessageResponse
// @Failure      400   {object}  models.ErrorResponse
// @Router       /api/cities/{id}/climate [put]
func UpsertCityClimate(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid city id"})
			return
		}

		var rows []models.CityClimateRow
		if err := c.ShouldBindJSON(&rows); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		tx, err := db.Begin()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer tx.Rollback()

		if _, err := tx.Exec(`DELETE FROM city_climate WHERE city_id = $1`, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, row := range rows {
			_, err := tx.Exec(`
				INSERT INTO city_climate (city_id, month, temperature, solar_radiation, wind_speed)
				VALUES ($1, $2, $3, $4, $5)`,
				id, row.Month, row.Temperature, row.SolarRadiation, row.WindSpeed)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Climate data updated"})
	}
}

// FindCityByName godoc
// @Summary      Find a city by name (accent-insensitive)
// @Tags         cities
// @Param        name  query     string  true  "City name"
// @Success      200   {object}  models.City
// @Failure      404   {object}  models.ErrorResponse
// @Router       /api/cities/search [get]
func FindCityByName(db *sql.DB) gin.HandlerFunc {
	repo := repository.NewClimateRepository(db)
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing name"})
			return
		}
		city, err := repo.FindCityByName(c.Request.Context(), name)
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "City not found"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, city)
	}
}

// DeleteCity godoc
// @Summary      Delete city and its climate rows
// @Tags         cities
// @Param        id   path      int  true  "City ID"
// @Success      200  {object}  models.MessageResponse
// @Router       /api/cities/{id} [delete]
func DeleteCity(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, err := db.Exec(`DELETE FROM city_climate WHERE city_id = $1`, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if _, err := db.Exec(`DELETE FROM cities WHERE id = $1`, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "City deleted"})
	}
}
