package memory

import "context"

type txKey struct{}

// Do выполняет fn под общей блокировкой транзакций хранилища, так что проверка
// конфликта и запись слота с записью клиента не перемежаются с другим Do.
// Вложенный вызов переиспользует внешнюю блокировку. Изменения при ошибке не откатываются
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}
