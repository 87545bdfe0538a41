package memstore

import (
	"context"
	"sync"
)

// ключ контекста для активной in-memory "транзакции"
type txContextKey struct{}

// memTx накапливает ключевые мьютексы, захваченные за время транзакции
type memTx struct {
	mu   sync.Mutex
	held map[string]*sync.Mutex
}

func (t *memTx) acquire(key string, m *sync.Mutex) {
	t.mu.Lock()
	// Повторный захват того же ключа внутри одной транзакции - no-op,
	// иначе самоблокировка
	if _, ok := t.held[key]; ok {
		t.mu.Unlock()
		return
	}
	t.held[key] = m
	t.mu.Unlock()

	m.Lock()
}

func (t *memTx) release() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, m := range t.held {
		m.Unlock()
	}
	t.held = map[string]*sync.Mutex{}
}

func txFromContext(ctx context.Context) *memTx {
	tx, _ := ctx.Value(txContextKey{}).(*memTx)
	return tx
}

// TxManager транзакционный менеджер для in-memory хранилища.
// Вместо сериализуемой транзакции Postgres даёт взаимное исключение
// по ключам: читатели внутри fn захватывают ключи (facilityID, date)
// и (userID, date) через методы Store, освобождение - по завершении fn
type TxManager struct{}

// NewTxManager создает transaction manager для in-memory хранилища
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn в транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoSerializable выполняет fn с взаимным исключением по затронутым
// ключам (facilityID, date)
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

// DoReadOnly выполняет fn в транзакции
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	// Вложенные транзакции не поддерживаем - переиспользуем внешнюю
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx := &memTx{held: make(map[string]*sync.Mutex)}
	defer tx.release()

	return fn(context.WithValue(ctx, txContextKey{}, tx))
}
