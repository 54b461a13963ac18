package delivery

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// FixedTimeProvider всегда возвращает одно и то же время
type FixedTimeProvider struct {
	Time time.Time
}

// Now возвращает зафиксированное время
func (p *FixedTimeProvider) Now() time.Time {
	return p.Time
}
