package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orderkyat/orderkyat/constants"
	"github.com/orderkyat/orderkyat/internal/entity"
)

// In-memory repository implementations. Used by the one-shot CLI (which has
// no database) and by tests.

type MemoryDraftRepository struct {
	mu        sync.Mutex
	open      *entity.InvoiceDraft
	finalized []*entity.InvoiceDraft
}

func NewMemoryDraftRepository() *MemoryDraftRepository {
	return &MemoryDraftRepository{}
}

func (m *MemoryDraftRepository) Save(_ context.Context, data entity.ExtractionResult) (*entity.InvoiceDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	if m.open == nil {
		m.open = &entity.InvoiceDraft{
			ID:        uuid.New(),
			Status:    constants.DraftStatusOpen,
			CreatedAt: now,
		}
	}
	m.open.Data = data
	m.open.UpdatedAt = now
	d := *m.open
	return &d, nil
}

func (m *MemoryDraftRepository) Load(_ context.Context) (*entity.InvoiceDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open == nil {
		return nil, nil
	}
	d := *m.open
	return &d, nil
}

func (m *MemoryDraftRepository) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = nil
	return nil
}

func (m *MemoryDraftRepository) MarkFinalized(_ context.Context, id uuid.UUID, invoiceNumber string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.open != nil && m.open.ID == id {
		m.open.Status = constants.DraftStatusFinalized
		m.open.InvoiceNumber = invoiceNumber
		m.open.UpdatedAt = time.Now()
		m.finalized = append(m.finalized, m.open)
		m.open = nil
	}
	return nil
}

func (m *MemoryDraftRepository) ListFinalized(_ context.Context) ([]*entity.InvoiceDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.InvoiceDraft, len(m.finalized))
	for i, d := range m.finalized {
		c := *d
		out[i] = &c
	}
	return out, nil
}

type MemoryStoreProfileRepository struct {
	mu      sync.Mutex
	profile entity.StoreProfile
}

func NewMemoryStoreProfileRepository() *MemoryStoreProfileRepository {
	return &MemoryStoreProfileRepository{}
}

func (m *MemoryStoreProfileRepository) Get(_ context.Context) (*entity.StoreProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.profile
	return &p, nil
}

func (m *MemoryStoreProfileRepository) Upsert(_ context.Context, p *entity.StoreProfile) (*entity.StoreProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.profile.ID == uuid.Nil {
		m.profile.ID = uuid.New()
		m.profile.CreatedAt = time.Now()
	}
	m.profile.Name = p.Name
	m.profile.Phone = p.Phone
	m.profile.Address = p.Address
	m.profile.UpdatedAt = time.Now()
	out := m.profile
	return &out, nil
}

type MemorySequenceRepository struct {
	mu       sync.Mutex
	counters map[int]int
}

func NewMemorySequenceRepository() *MemorySequenceRepository {
	return &MemorySequenceRepository{counters: map[int]int{}}
}

func (m *MemorySequenceRepository) Next(_ context.Context, year int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[year]++
	return m.counters[year], nil
}

func (m *MemorySequenceRepository) Current(_ context.Context, year int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counters[year], nil
}
