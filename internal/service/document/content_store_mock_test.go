package document

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

var _ contentStore = &contentStoreMock{}

type contentStoreMock struct {
	CreateFunc     func(ctx context.Context, doc *domain.Document) (uuid.UUID, error)
	GetFunc        func(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	UpdateFunc     func(ctx context.Context, id uuid.UUID, newContent string, metadataPatch map[string]any) error
	GetContentFunc func(ctx context.Context, id uuid.UUID) (*domain.Content, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Doc *domain.Document
		}
		Get []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Update []struct {
			Ctx           context.Context
			ID            uuid.UUID
			NewContent    string
			MetadataPatch map[string]any
		}
		GetContent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate     sync.RWMutex
	lockGet        sync.RWMutex
	lockUpdate     sync.RWMutex
	lockGetContent sync.RWMutex
}

func (mock *contentStoreMock) Create(ctx context.Context, doc *domain.Document) (uuid.UUID, error) {
	if mock.CreateFunc == nil {
		panic("contentStoreMock.CreateFunc: method is nil but contentStore.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Doc *domain.Document
	}{Ctx: ctx, Doc: doc}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, doc)
}

func (mock *contentStoreMock) CreateCalls() []struct {
	Ctx context.Context
	Doc *domain.Document
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *contentStoreMock) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	if mock.GetFunc == nil {
		panic("contentStoreMock.GetFunc: method is nil but contentStore.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *contentStoreMock) GetCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contentStoreMock) Update(ctx context.Context, id uuid.UUID, newContent string, metadataPatch map[string]any) error {
	if mock.UpdateFunc == nil {
		panic("contentStoreMock.UpdateFunc: method is nil but contentStore.Update was just called")
	}
	callInfo := struct {
		Ctx           context.Context
		ID            uuid.UUID
		NewContent    string
		MetadataPatch map[string]any
	}{Ctx: ctx, ID: id, NewContent: newContent, MetadataPatch: metadataPatch}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, newContent, metadataPatch)
}

func (mock *contentStoreMock) UpdateCalls() []struct {
	Ctx           context.Context
	ID            uuid.UUID
	NewContent    string
	MetadataPatch map[string]any
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *contentStoreMock) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if mock.GetContentFunc == nil {
		panic("contentStoreMock.GetContentFunc: method is nil but contentStore.GetContent was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetContent.Lock()
	mock.calls.GetContent = append(mock.calls.GetContent, callInfo)
	mock.lockGetContent.Unlock()
	return mock.GetContentFunc(ctx, id)
}

func (mock *contentStoreMock) GetContentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetContent.RLock()
	calls := mock.calls.GetContent
	mock.lockGetContent.RUnlock()
	return calls
}
