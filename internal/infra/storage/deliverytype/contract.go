package deliverytype

import (
	"github.com/m04kA/SMC-BakeryService/pkg/dbmetrics"
)

// Переиспользуем интерфейс из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
