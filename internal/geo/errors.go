package geo

import "errors"

var (
	// ErrInvalidGeometry - некорректный полигон или линия (пустое кольцо, нечисловые координаты и т.п.)
	ErrInvalidGeometry = errors.New("invalid geometry")
	// ErrInvalidCoordinate - координата вне диапазона WGS84 или не является конечным числом
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)
