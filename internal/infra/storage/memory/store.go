package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CoachingService/internal/domain"
)

// Store хранилище в памяти процесса для локального запуска и тестов.
// Все репозитории одного Store разделяют общую блокировку
type Store struct {
	txMu     sync.Mutex
	mu       sync.Mutex
	slots    map[string]domain.AvailabilitySlot
	appts    map[string]domain.Appointment
	messages map[string]domain.ContactMessage
	roles    map[string]domain.Role
	now      func() time.Time
	last     time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		slots:    make(map[string]domain.AvailabilitySlot),
		appts:    make(map[string]domain.Appointment),
		messages: make(map[string]domain.ContactMessage),
		roles:    make(map[string]domain.Role),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Slots репозиторий слотов
func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}

// Appointments репозиторий записей
func (s *Store) Appointments() *AppointmentRepository {
	return &AppointmentRepository{store: s}
}

// Contacts репозиторий сообщений формы обратной связи
func (s *Store) Contacts() *ContactRepository {
	return &ContactRepository{store: s}
}

// Roles репозиторий ролей
func (s *Store) Roles() *RoleRepository {
	return &RoleRepository{store: s}
}

// SetRole назначает роль пользователю
func (s *Store) SetRole(userID string, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[userID] = role
}

// stamp строго возрастающее время создания. Вызывается под блокировкой
func (s *Store) stamp() time.Time {
	t := s.now()
	if !t.After(s.last) {
		t = s.last.Add(time.Nanosecond)
	}
	s.last = t
	return t
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sortByDateTime[T any](items []*T, key func(*T) (time.Time, string)) {
	sort.SliceStable(items, func(i, j int) bool {
		di, ti := key(items[i])
		dj, tj := key(items[j])
		if !sameDay(di, dj) {
			return di.Before(dj)
		}
		return ti < tj
	})
}
