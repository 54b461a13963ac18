package domain

// Параметры планировщика доставки по умолчанию
// Переопределяются секцией [delivery] конфигурации
const (
	// DefaultPreparationHours используется, когда время приготовления не удалось разобрать, и для пустой корзины
	DefaultPreparationHours = 4

	// DefaultSafetyBufferMinutes запас к (сейчас + время приготовления)
	DefaultSafetyBufferMinutes = 15

	// DefaultSameDayCutoffHour если минимальное время доставки наступает в этот час или позже, доставку на сегодня не предлагаем
	DefaultSameDayCutoffHour = 21

	// DefaultAdvanceOrderDays 0 = без ограничения
	DefaultAdvanceOrderDays = 0
)

// Business validation constants
const (
	MinSafetyBufferMinutes   = 0
	MaxSafetyBufferMinutes   = 240
	MinSameDayCutoffHour     = 1
	MaxSameDayCutoffHour     = 24
	MinDefaultPrepHours      = 1
	MaxDefaultPrepHours      = 72
	MaxPreparationHours      = 24 * 365 // Больше этого значения время приготовления не растет
	MaxAdvanceOrderDays      = 365
	MaxNotesLength           = 500
	MaxCancellationReason    = 500
	MaxOrderItemQuantity     = 100
	MaxDeliveryTypeTimeSlots = 24
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// InactiveStatuses статусы завершенных заказов, которые уже не меняются
var InactiveStatuses = []OrderStatus{
	StatusDelivered,
	StatusCancelled,
}
