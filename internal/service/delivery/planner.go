package delivery

import (
	"time"

	"github.com/m04kA/SMC-BakeryService/internal/domain"
	"github.com/m04kA/SMC-BakeryService/pkg/types"
)

// Planner планировщик доставки
// Не хранит состояния: каждый ответ вычисляется из корзины, даты и текущего времени
type Planner struct {
	settings     domain.DeliverySettings
	timeProvider TimeProvider
}

// NewPlanner создает планировщик с системными часами
func NewPlanner(settings domain.DeliverySettings) *Planner {
	return NewPlannerWithTimeProvider(settings, &RealTimeProvider{})
}

// NewPlannerWithTimeProvider создает планировщик с заданным источником времени
func NewPlannerWithTimeProvider(settings domain.DeliverySettings, timeProvider TimeProvider) *Planner {
	if settings.Location == nil {
		settings.Location = time.Local
	}
	return &Planner{
		settings:     settings,
		timeProvider: timeProvider,
	}
}

// Settings возвращает параметры планировщика
func (p *Planner) Settings() domain.DeliverySettings {
	return p.settings
}

// Location часовой пояс пекарни
func (p *Planner) Location() *time.Location {
	return p.settings.Location
}

// Now текущее время в часовом поясе пекарни
func (p *Planner) Now() time.Time {
	return p.timeProvider.Now().In(p.settings.Location)
}

// Today полночь текущего дня
func (p *Planner) Today() time.Time {
	return dateOnly(p.Now())
}

// Tomorrow полночь следующего дня
func (p *Planner) Tomorrow() time.Time {
	return p.Today().AddDate(0, 0, 1)
}

// ParsePreparationTime разбирает текст времени приготовления с дефолтом из настроек
func (p *Planner) ParsePreparationTime(text string) int {
	return ParsePreparationTime(text, p.settings.DefaultPreparationHours)
}

// PreparationHours эффективное время приготовления корзины
func (p *Planner) PreparationHours(items []domain.CartItem) int {
	return EffectivePreparationTime(items, p.settings.DefaultPreparationHours)
}

// CurrentTimeInMinutes минуты от полуночи по текущим часам
func (p *Planner) CurrentTimeInMinutes() int {
	now := p.Now()
	return now.Hour()*60 + now.Minute()
}

// MinimumDeliverableInstant самое раннее время доставки сегодня, в минутах от полуночи
// Значение не ограничивается сверху: больше 1440 означает, что сегодня не подходит ни одно окно
// Часы приготовления вне [0, MaxPreparationHours] приводятся к границе
func (p *Planner) MinimumDeliverableInstant(prepHours int) int {
	if prepHours < 0 {
		prepHours = 0
	}
	if prepHours > domain.MaxPreparationHours {
		prepHours = domain.MaxPreparationHours
	}
	return p.CurrentTimeInMinutes() + prepHours*60 + p.settings.SafetyBufferMinutes
}

// IsToday сравнивает календарные даты, а не моменты времени
func (p *Planner) IsToday(date time.Time) bool {
	return isSameDay(date, p.Now())
}

// IsSlotAvailable можно ли выбрать окно доставки на дату
// Будущие даты не ограничены. Сегодня окно должно начинаться не раньше минимального времени доставки
func (p *Planner) IsSlotAvailable(slotLabel string, date time.Time, prepHours int) bool {
	if !p.IsToday(date) {
		return true
	}

	startMinutes, err := types.SlotLabel(slotLabel).StartMinutes()
	if err != nil {
		// Нераспознанное окно на сегодня не предлагаем
		return false
	}

	return startMinutes >= p.MinimumDeliverableInstant(prepHours)
}

// IsDeliveryTypeAvailable доступен ли тип доставки на дату
// Тип без окон недоступен
func (p *Planner) IsDeliveryTypeAvailable(deliveryType *domain.DeliveryType, date time.Time, prepHours int) bool {
	if deliveryType == nil || !deliveryType.HasTimeSlots() {
		return false
	}
	for _, slot := range deliveryType.TimeSlots {
		if p.IsSlotAvailable(slot.Time, date, prepHours) {
			return true
		}
	}
	return false
}

// ShouldOfferToday предлагать ли доставку на сегодня
// Отсечка по часу не зависит от окон: после нее "сегодня" не показывается вовсе
func (p *Planner) ShouldOfferToday(prepHours int) bool {
	return p.MinimumDeliverableInstant(prepHours)/60 < p.settings.SameDayCutoffHour
}

// EarliestOfferableDate самая ранняя дата, которую можно выбрать в календаре
func (p *Planner) EarliestOfferableDate(prepHours int) time.Time {
	if !p.ShouldOfferToday(prepHours) {
		return p.Tomorrow()
	}
	return p.Today()
}

// LatestOfferableDate последняя доступная дата; ok == false, если ограничения нет
func (p *Planner) LatestOfferableDate() (time.Time, bool) {
	if !p.settings.HasAdvanceOrderLimit() {
		return time.Time{}, false
	}
	return p.Today().AddDate(0, 0, p.settings.AdvanceOrderDays), true
}

// IsDateSelectable можно ли выбрать дату в календаре
func (p *Planner) IsDateSelectable(date time.Time, prepHours int) bool {
	day := dateOnlyIn(date, p.settings.Location)
	if day.Before(p.EarliestOfferableDate(prepHours)) {
		return false
	}
	if latest, ok := p.LatestOfferableDate(); ok && day.After(latest) {
		return false
	}
	return true
}

// FilterDeliveryTypes размечает доступность типов доставки и их окон на дату
func (p *Planner) FilterDeliveryTypes(deliveryTypes []*domain.DeliveryType, date time.Time, prepHours int) []domain.DeliveryTypeAvailability {
	result := make([]domain.DeliveryTypeAvailability, 0, len(deliveryTypes))

	for _, deliveryType := range deliveryTypes {
		slots := make([]domain.SlotAvailability, len(deliveryType.TimeSlots))
		for i, slot := range deliveryType.TimeSlots {
			slots[i] = domain.SlotAvailability{
				Time:      slot.Time,
				Available: p.IsSlotAvailable(slot.Time, date, prepHours),
			}
		}

		result = append(result, domain.DeliveryTypeAvailability{
			DeliveryType: deliveryType,
			Available:    p.IsDeliveryTypeAvailable(deliveryType, date, prepHours),
			Slots:        slots,
		})
	}

	return result
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// dateOnly обнуляет время, сохраняя часовой пояс
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dateOnlyIn берет календарную дату t и ставит ее на полночь в loc
func dateOnlyIn(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
