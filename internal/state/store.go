package state

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberDashboard/internal/domain"
)

// Transition чистая функция перехода состояния фильтра
type Transition func(domain.FilterSpec) domain.FilterSpec

// FetchResult данные одного успешного запроса списка записей
type FetchResult struct {
	Appointments []domain.Appointment
	StatusStats  domain.StatusStats
	Pagination   domain.PaginationInfo
}

// Snapshot копия состояния дашборда на момент чтения
type Snapshot struct {
	Filter        domain.FilterSpec
	Appointments  []domain.Appointment
	StatusStats   domain.StatusStats
	Pagination    domain.PaginationInfo
	Loading       bool
	Error         string
	Generation    uint64
	LastFetchedAt *time.Time
}

// Store явный контейнер состояния дашборда
// Все изменения сериализуются мьютексом. Каждый запрос списка получает монотонный
// номер поколения; результат применяется только если его поколение последнее.
type Store struct {
	mu sync.RWMutex

	filter        domain.FilterSpec
	appointments  []domain.Appointment
	statusStats   domain.StatusStats
	pagination    domain.PaginationInfo
	loading       bool
	errMsg        string
	generation    uint64
	lastFetchedAt *time.Time

	now func() time.Time
}

// New создает контейнер с фильтром по умолчанию
func New() *Store {
	return NewWithFilter(domain.DefaultFilterSpec())
}

// NewWithFilter создает контейнер с указанным начальным фильтром
func NewWithFilter(filter domain.FilterSpec) *Store {
	return &Store{
		filter:       filter,
		appointments: []domain.Appointment{},
		statusStats:  domain.StatusStats{},
		pagination: domain.PaginationInfo{
			Page:  filter.Page,
			Limit: filter.Limit,
		},
		now: time.Now,
	}
}

// Filter возвращает текущий фильтр
func (s *Store) Filter() domain.FilterSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Snapshot возвращает копию состояния
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	appointments := make([]domain.Appointment, len(s.appointments))
	copy(appointments, s.appointments)

	stats := make(domain.StatusStats, len(s.statusStats))
	for k, v := range s.statusStats {
		stats[k] = v
	}

	var fetchedAt *time.Time
	if s.lastFetchedAt != nil {
		t := *s.lastFetchedAt
		fetchedAt = &t
	}

	return Snapshot{
		Filter:        s.filter,
		Appointments:  appointments,
		StatusStats:   stats,
		Pagination:    s.pagination,
		Loading:       s.loading,
		Error:         s.errMsg,
		Generation:    s.generation,
		LastFetchedAt: fetchedAt,
	}
}

// Appointment ищет запись в текущем списке
func (s *Store) Appointment(id string) (domain.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Appointment{}, false
}

// BeginFetch атомарно применяет переход фильтра, выдает новое поколение и
// выставляет флаг загрузки. Возвращает поколение и фильтр, с которым нужно идти в API.
func (s *Store) BeginFetch(transition Transition) (uint64, domain.FilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if transition != nil {
		s.filter = transition(s.filter)
	}
	s.generation++
	s.loading = true

	return s.generation, s.filter
}

// CommitFetch заменяет список целиком, если поколение последнее.
// Возвращает false, если ответ устарел и был отброшен.
func (s *Store) CommitFetch(generation uint64, result FetchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}

	appointments := result.Appointments
	if appointments == nil {
		appointments = []domain.Appointment{}
	}
	stats := result.StatusStats
	if stats == nil {
		stats = domain.StatusStats{}
	}

	s.appointments = appointments
	s.statusStats = stats
	s.pagination = result.Pagination
	s.filter = s.filter.ClampPage(result.Pagination.TotalPages)
	s.loading = false
	s.errMsg = ""

	now := s.now()
	s.lastFetchedAt = &now

	return true
}

// FailFetch фиксирует ошибку последнего запроса. Предыдущие данные не очищаются.
// Возвращает false, если ответ устарел и был отброшен.
func (s *Store) FailFetch(generation uint64, message string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return false
	}

	s.loading = false
	s.errMsg = message

	return true
}
