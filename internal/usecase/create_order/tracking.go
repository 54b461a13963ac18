package create_order

import (
	"strings"

	"github.com/google/uuid"
)

const trackingCodePrefix = "BK-"

// UUIDTrackingCodeGenerator код вида "BK-1F0C2A9E7B3D" из случайного UUID
type UUIDTrackingCodeGenerator struct{}

// Generate возвращает новый код отслеживания
func (UUIDTrackingCodeGenerator) Generate() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return trackingCodePrefix + strings.ToUpper(raw[:12])
}
