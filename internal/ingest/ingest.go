// Package ingest разбирает внешние наборы происшествий (CSV в формате NCRB и JSON)
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/safe_route_system/internal/geo"
	"github.com/shenikar/safe_route_system/internal/models"
)

// IndiaCenter - точка по умолчанию, если город неизвестен
var IndiaCenter = geo.Coordinate{Lng: 78.9629, Lat: 20.5937}

// ErrMissingColumns - в CSV нет обязательных колонок
var ErrMissingColumns = errors.New("missing required columns")

// crimeHeads сопоставляет статьи NCRB с категориями происшествий
var crimeHeads = map[string]models.CrimeType{
	"MURDER":             models.CrimeViolent,
	"RAPE":               models.CrimeViolent,
	"KIDNAPPING":         models.CrimeViolent,
	"ROBBERY":            models.CrimeTheft,
	"BURGLARY":           models.CrimeTheft,
	"THEFT":              models.CrimeTheft,
	"RIOTS":              models.CrimeViolent,
	"CRIMINAL TRESPASS":  models.CrimeSuspiciousActivity,
	"CHEATING":           models.CrimeFraud,
	"COUNTERFEITING":     models.CrimeFraud,
	"ARSON":              models.CrimeVandalism,
	"HURT":               models.CrimeAssault,
	"DOWRY DEATHS":       models.CrimeViolent,
	"MOLESTATION":        models.CrimeHarassment,
	"SEXUAL HARASSMENT":  models.CrimeHarassment,
	"CRUELTY BY HUSBAND": models.CrimeDomesticViolence,
}

var severities = map[models.CrimeType]models.Severity{
	models.CrimeViolent:            models.SeverityHigh,
	models.CrimeTheft:              models.SeverityMedium,
	models.CrimeFraud:              models.SeverityMedium,
	models.CrimeHarassment:         models.SeverityMedium,
	models.CrimeDomesticViolence:   models.SeverityHigh,
	models.CrimeVandalism:          models.SeverityLow,
	models.CrimeSuspiciousActivity: models.SeverityLow,
	models.CrimeOther:              models.SeverityMedium,
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02", "02-01-2006", "02/01/2006"}

// MapCrimeHead возвращает категорию для статьи NCRB, неизвестные статьи дают other
func MapCrimeHead(head string) models.CrimeType {
	if ct, ok := crimeHeads[strings.ToUpper(strings.TrimSpace(head))]; ok {
		return ct
	}
	return models.CrimeOther
}

// SeverityOf возвращает степень тяжести для категории
func SeverityOf(ct models.CrimeType) models.Severity {
	if s, ok := severities[ct]; ok {
		return s
	}
	return models.SeverityMedium
}

// Importer превращает внешние записи в происшествия
type Importer struct {
	centres map[string]geo.Coordinate
	now     func() time.Time
}

// NewImporter создает Importer. centres - центры городов для записей без координат.
func NewImporter(centres map[string]geo.Coordinate, now func() time.Time) *Importer {
	normalized := make(map[string]geo.Coordinate, len(centres))
	for name, c := range centres {
		normalized[strings.ToUpper(name)] = c
	}
	if now == nil {
		now = time.Now
	}
	return &Importer{centres: normalized, now: now}
}

// ParseCSV читает CSV с заголовком в формате NCRB.
// Строки без города и района, без статьи или без штата пропускаются.
func (im *Importer) ParseCSV(r io.Reader) ([]models.Incident, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Incident{}, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToUpper(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))] = i
	}
	_, hasHead := columns["CRIME_HEAD"]
	_, hasType := columns["CRIME_TYPE"]
	_, hasState := columns["STATE"]
	if !(hasHead || hasType) || !hasState {
		return nil, fmt.Errorf("%w: need CRIME_HEAD or CRIME_TYPE and STATE", ErrMissingColumns)
	}

	incidents := make([]models.Incident, 0)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}
		row := csvRow{columns: columns, record: record}

		inc, ok, err := im.fromRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		if ok {
			incidents = append(incidents, inc)
		}
	}
	return incidents, nil
}

type csvRow struct {
	columns map[string]int
	record  []string
}

func (r csvRow) get(name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (im *Importer) fromRow(row csvRow) (models.Incident, bool, error) {
	city := firstNonEmpty(row.get("CITY"), row.get("DISTRICT"))
	district := firstNonEmpty(row.get("DISTRICT"), row.get("CITY"))
	head := firstNonEmpty(row.get("CRIME_HEAD"), row.get("CRIME_TYPE"))
	state := row.get("STATE")
	if city == "" || head == "" || state == "" {
		return models.Incident{}, false, nil
	}

	location, err := im.location(row, city)
	if err != nil {
		return models.Incident{}, false, err
	}
	timestamp, err := im.timestamp(row.get("DATE_OF_OCCURRENCE"))
	if err != nil {
		return models.Incident{}, false, err
	}

	crimeType := MapCrimeHead(head)
	place := firstNonEmpty(row.get("LOCATION_DETAILS"), row.get("DISTRICT")+", "+state)

	return models.Incident{
		ID:            firstNonEmpty(row.get("CRIME_ID"), generatedID()),
		City:          city,
		District:      district,
		Location:      location,
		CrimeType:     crimeType,
		Description:   strings.TrimSpace(fmt.Sprintf("%s reported in %s. %s", head, place, row.get("DESCRIPTION"))),
		Timestamp:     timestamp,
		Severity:      SeverityOf(crimeType),
		Status:        parseStatus(row.get("STATUS")),
		PoliceStation: firstNonEmpty(row.get("POLICE_STATION"), "Not Specified"),
	}, true, nil
}

func (im *Importer) location(row csvRow, city string) (geo.Coordinate, error) {
	latRaw, lngRaw := row.get("LATITUDE"), row.get("LONGITUDE")
	if latRaw == "" || lngRaw == "" {
		if c, ok := im.centres[strings.ToUpper(city)]; ok {
			return c, nil
		}
		return IndiaCenter, nil
	}

	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: latitude %q", geo.ErrInvalidCoordinate, latRaw)
	}
	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: longitude %q", geo.ErrInvalidCoordinate, lngRaw)
	}
	c := geo.Coordinate{Lng: lng, Lat: lat}
	if err := geo.ValidateCoordinate(c); err != nil {
		return geo.Coordinate{}, err
	}
	return c, nil
}

func (im *Importer) timestamp(raw string) (time.Time, error) {
	if raw == "" {
		return im.now().UTC(), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// parseStatus приводит "UNDER INVESTIGATION" и подобные значения к статусу; неизвестные дают reported
func parseStatus(raw string) models.Status {
	s := models.Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_"))
	if s.Valid() {
		return s
	}
	return models.StatusReported
}

func generatedID() string {
	return "IND" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

// ParseJSON читает JSON-массив происшествий и проверяет координаты каждого
func (im *Importer) ParseJSON(r io.Reader) ([]models.Incident, error) {
	var incidents []models.Incident
	if err := json.NewDecoder(r).Decode(&incidents); err != nil {
		return nil, fmt.Errorf("failed to decode incidents: %w", err)
	}
	if incidents == nil {
		incidents = []models.Incident{}
	}
	for i := range incidents {
		inc := &incidents[i]
		if err := geo.ValidateCoordinate(inc.Location); err != nil {
			return nil, fmt.Errorf("incident %d (%s): %w", i, inc.ID, err)
		}
		if inc.ID == "" {
			inc.ID = generatedID()
		}
		if inc.CrimeType == "" {
			inc.CrimeType = models.CrimeOther
		}
		if !inc.Severity.Valid() {
			inc.Severity = SeverityOf(inc.CrimeType)
		}
		if !inc.Status.Valid() {
			inc.Status = models.StatusReported
		}
		if inc.Timestamp.IsZero() {
			inc.Timestamp = im.now().UTC()
		}
	}
	return incidents, nil
}
