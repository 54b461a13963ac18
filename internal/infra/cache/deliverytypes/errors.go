package deliverytypes

import "errors"

var (
	// ErrCacheMiss возвращается, когда каталога нет в кэше
	ErrCacheMiss = errors.New("deliverytypes.cache: miss")

	// ErrCache возвращается при ошибках Redis или сериализации
	ErrCache = errors.New("deliverytypes.cache: redis error")
)
