package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/finflow/finflow/internal/domain"
	"github.com/finflow/finflow/internal/usecase"
)

// MockTemplateRepository is a mock implementation of TemplateRepository.
type MockTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]*domain.Template

	CreateFunc           func(ctx context.Context, template *domain.Template) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Template, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Template, error)
	ListActiveFunc       func(ctx context.Context, asOf time.Time) ([]*domain.Template, error)
	ListByOwnerFunc      func(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Template, error)
	SetEndDateFunc       func(ctx context.Context, id string, endDate, updatedAt time.Time) error
	UpdateWatermarkFunc  func(ctx context.Context, tx usecase.Transaction, id string, watermark, updatedAt time.Time) error
}

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{
		templates: make(map[string]*domain.Template),
	}
}

// Add seeds a template into the in-memory store.
func (m *MockTemplateRepository) Add(template *domain.Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[template.ID] = template
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[template.ID] = template
	return nil
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if template, ok := m.templates[id]; ok {
		copied := *template
		return &copied, nil
	}
	return nil, domain.ErrTemplateNotFound
}

func (m *MockTemplateRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Template, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockTemplateRepository) ListActive(ctx context.Context, asOf time.Time) ([]*domain.Template, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx, asOf)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var active []*domain.Template
	for _, template := range m.templates {
		if template.StartDate.After(asOf) {
			continue
		}
		if template.EndDate != nil && template.LastMaterializedDate != nil &&
			!template.LastMaterializedDate.Before(*template.EndDate) {
			continue
		}
		copied := *template
		active = append(active, &copied)
	}
	return active, nil
}

func (m *MockTemplateRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*domain.Template, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var owned []*domain.Template
	for _, template := range m.templates {
		if template.OwnerID == ownerID {
			copied := *template
			owned = append(owned, &copied)
		}
	}
	return owned, nil
}

func (m *MockTemplateRepository) SetEndDate(ctx context.Context, id string, endDate, updatedAt time.Time) error {
	if m.SetEndDateFunc != nil {
		return m.SetEndDateFunc(ctx, id, endDate, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	template, ok := m.templates[id]
	if !ok {
		return domain.ErrTemplateNotFound
	}
	template.EndDate = &endDate
	template.UpdatedAt = updatedAt
	return nil
}

func (m *MockTemplateRepository) UpdateWatermark(ctx context.Context, tx usecase.Transaction, id string, watermark, updatedAt time.Time) error {
	if m.UpdateWatermarkFunc != nil {
		return m.UpdateWatermarkFunc(ctx, tx, id, watermark, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	template, ok := m.templates[id]
	if !ok {
		return domain.ErrTemplateNotFound
	}
	template.LastMaterializedDate = &watermark
	template.UpdatedAt = updatedAt
	return nil
}

// Watermark returns the stored watermark for a template, nil when unset.
func (m *MockTemplateRepository) Watermark(id string) *time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if template, ok := m.templates[id]; ok {
		return template.LastMaterializedDate
	}
	return nil
}

// MockOccurrenceRepository is a mock implementation of OccurrenceRepository.
type MockOccurrenceRepository struct {
	mu          sync.RWMutex
	occurrences map[string]*domain.Occurrence
	byDate      map[string]string // templateID|date -> occurrence ID

	InsertFunc         func(ctx context.Context, tx usecase.Transaction, occurrence *domain.Occurrence) error
	DatesForFunc       func(ctx context.Context, tx usecase.Transaction, templateID string) (map[time.Time]struct{}, error)
	ListByTemplateFunc func(ctx context.Context, templateID string, limit, offset int) ([]*domain.Occurrence, error)
	DeleteFunc         func(ctx context.Context, id string) error
}

func NewMockOccurrenceRepository() *MockOccurrenceRepository {
	return &MockOccurrenceRepository{
		occurrences: make(map[string]*domain.Occurrence),
		byDate:      make(map[string]string),
	}
}

func dateKey(templateID string, date time.Time) string {
	return fmt.Sprintf("%s|%s", templateID, domain.FormatDate(date))
}

func (m *MockOccurrenceRepository) Insert(ctx context.Context, tx usecase.Transaction, occurrence *domain.Occurrence) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, tx, occurrence)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dateKey(occurrence.TemplateID, occurrence.Date)
	if _, exists := m.byDate[key]; exists {
		return domain.ErrDuplicateOccurrence
	}
	m.occurrences[occurrence.ID] = occurrence
	m.byDate[key] = occurrence.ID
	return nil
}

func (m *MockOccurrenceRepository) DatesFor(ctx context.Context, tx usecase.Transaction, templateID string) (map[time.Time]struct{}, error) {
	if m.DatesForFunc != nil {
		return m.DatesForFunc(ctx, tx, templateID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	dates := make(map[time.Time]struct{})
	for _, occurrence := range m.occurrences {
		if occurrence.TemplateID == templateID {
			dates[occurrence.Date] = struct{}{}
		}
	}
	return dates, nil
}

func (m *MockOccurrenceRepository) ListByTemplate(ctx context.Context, templateID string, limit, offset int) ([]*domain.Occurrence, error) {
	if m.ListByTemplateFunc != nil {
		return m.ListByTemplateFunc(ctx, templateID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var list []*domain.Occurrence
	for _, occurrence := range m.occurrences {
		if occurrence.TemplateID == templateID {
			list = append(list, occurrence)
		}
	}
	return list, nil
}

func (m *MockOccurrenceRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	occurrence, ok := m.occurrences[id]
	if !ok {
		return domain.ErrOccurrenceNotFound
	}
	delete(m.byDate, dateKey(occurrence.TemplateID, occurrence.Date))
	delete(m.occurrences, id)
	return nil
}

// Count returns the number of stored occurrences for a template.
func (m *MockOccurrenceRepository) Count(templateID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	count := 0
	for _, occurrence := range m.occurrences {
		if occurrence.TemplateID == templateID {
			count++
		}
	}
	return count
}

// IDOn returns the occurrence ID stored for a template on a date, if any.
func (m *MockOccurrenceRepository) IDOn(templateID string, date time.Time) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byDate[dateKey(templateID, date)]
	return id, ok
}

// MockTransaction records commit/rollback calls.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.mu.Lock()
	m.Transactions = append(m.Transactions, tx)
	m.mu.Unlock()
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%d", m.counter)
}

// MockRunLocker is a mock implementation of RunLocker.
type MockRunLocker struct {
	mu     sync.Mutex
	locked map[string]bool

	TryLockFunc func(ctx context.Context, templateID string, ttl time.Duration) (bool, error)
	UnlockFunc  func(ctx context.Context, templateID string) error
}

func NewMockRunLocker() *MockRunLocker {
	return &MockRunLocker{locked: make(map[string]bool)}
}

func (m *MockRunLocker) TryLock(ctx context.Context, templateID string, ttl time.Duration) (bool, error) {
	if m.TryLockFunc != nil {
		return m.TryLockFunc(ctx, templateID, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked[templateID] {
		return false, nil
	}
	m.locked[templateID] = true
	return true, nil
}

func (m *MockRunLocker) Unlock(ctx context.Context, templateID string) error {
	if m.UnlockFunc != nil {
		return m.UnlockFunc(ctx, templateID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locked, templateID)
	return nil
}

// MockRetrier is a pass-through Retrier.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}
