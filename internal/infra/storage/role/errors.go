package role

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: role.repository: failed to build query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: role.repository: failed to scan row", domain.ErrStorage)
)
