package slot

import (
	"fmt"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = fmt.Errorf("%w: slot.repository: slot not found", domain.ErrNotFound)

	// ErrNoTransaction возвращается, когда блокировка слота запрошена вне транзакции
	ErrNoTransaction = fmt.Errorf("%w: slot.repository: lock requires an active transaction", domain.ErrStorage)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = fmt.Errorf("%w: slot.repository: failed to build query", domain.ErrStorage)

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = fmt.Errorf("%w: slot.repository: failed to execute query", domain.ErrStorage)

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = fmt.Errorf("%w: slot.repository: failed to scan row", domain.ErrStorage)
)
