package contact

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrMessageNotFound возвращается, когда сообщение не найдено
	ErrMessageNotFound = fmt.Errorf("%w: contact.repository: message not found", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: contact.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: contact.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: contact.repository: failed to scan row", domain.ErrStorage)
)
