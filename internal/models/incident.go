package models

import (
	"time"

	"github.com/shenikar/safe_route_system/internal/geo"
)

// CrimeType - категория происшествия
type CrimeType string

const (
	CrimeTheft              CrimeType = "theft"
	CrimeAssault            CrimeType = "assault"
	CrimeHarassment         CrimeType = "harassment"
	CrimeVandalism          CrimeType = "vandalism"
	CrimeSuspiciousActivity CrimeType = "suspicious_activity"

	// Категории, встречающиеся только при импорте внешних данных
	CrimeViolent          CrimeType = "violent"
	CrimeFraud            CrimeType = "fraud"
	CrimeDomesticViolence CrimeType = "domestic_violence"
	CrimeOther            CrimeType = "other"
)

// Severity - степень тяжести происшествия
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid сообщает, является ли значение допустимой степенью тяжести
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// Status - стадия расследования происшествия
type Status string

const (
	StatusReported           Status = "reported"
	StatusUnderInvestigation Status = "under_investigation"
	StatusResolved           Status = "resolved"
	StatusClosed             Status = "closed"
)

// Statuses - все допустимые статусы в фиксированном порядке
var Statuses = []Status{StatusReported, StatusUnderInvestigation, StatusResolved, StatusClosed}

// Valid сообщает, является ли значение допустимым статусом
func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Incident - зарегистрированное происшествие. Не изменяется после создания.
type Incident struct {
	ID            string         `json:"id"`
	City          string         `json:"city"`
	District      string         `json:"district"`
	Location      geo.Coordinate `json:"location"`
	CrimeType     CrimeType      `json:"crimeType"`
	Description   string         `json:"description"`
	Timestamp     time.Time      `json:"timestamp"`
	Severity      Severity       `json:"severity"`
	Status        Status         `json:"status"`
	PoliceStation string         `json:"policeStation"`
}

// IncidentStats - агрегированная статистика по набору происшествий
type IncidentStats struct {
	Total      int               `json:"total"`
	ByCity     map[string]int    `json:"byCity"`
	ByType     map[CrimeType]int `json:"byType"`
	BySeverity map[Severity]int  `json:"bySeverity"`
	ByStatus   map[Status]int    `json:"byStatus"`
}

// NewIncidentStats считает статистику по происшествиям
func NewIncidentStats(incidents []Incident) IncidentStats {
	stats := IncidentStats{
		Total:      len(incidents),
		ByCity:     make(map[string]int),
		ByType:     make(map[CrimeType]int),
		BySeverity: make(map[Severity]int),
		ByStatus:   make(map[Status]int),
	}
	for _, inc := range incidents {
		stats.ByCity[inc.City]++
		stats.ByType[inc.CrimeType]++
		stats.BySeverity[inc.Severity]++
		stats.ByStatus[inc.Status]++
	}
	return stats
}
