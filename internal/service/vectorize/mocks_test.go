package vectorize

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/resilihub/docvault/internal/domain"
)

var _ contentReader = &contentReaderMock{}

type contentReaderMock struct {
	GetContentFunc func(ctx context.Context, id uuid.UUID) (*domain.Content, error)

	calls struct {
		GetContent []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetContent sync.RWMutex
}

func (mock *contentReaderMock) GetContent(ctx context.Context, id uuid.UUID) (*domain.Content, error) {
	if mock.GetContentFunc == nil {
		panic("contentReaderMock.GetContentFunc: method is nil but contentReader.GetContent was just called")
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

func (mock *contentReaderMock) GetContentCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetContent.RLock()
	calls := mock.calls.GetContent
	mock.lockGetContent.RUnlock()
	return calls
}

var _ chunkStore = &chunkStoreMock{}

type chunkStoreMock struct {
	ReplaceFunc         func(ctx context.Context, documentID uuid.UUID, chunks []domain.Chunk) error
	ListByDocumentFunc  func(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error)
	UpdateEmbeddingFunc func(ctx context.Context, chunkID string, vector []float32) error

	calls struct {
		Replace []struct {
			Ctx        context.Context
			DocumentID uuid.UUID
			Chunks     []domain.Chunk
		}
		ListByDocument []struct {
			Ctx        context.Context
			DocumentID uuid.UUID
		}
		UpdateEmbedding []struct {
			Ctx     context.Context
			ChunkID string
			Vector  []float32
		}
	}
	lockReplace         sync.RWMutex
	lockListByDocument  sync.RWMutex
	lockUpdateEmbedding sync.RWMutex
}

func (mock *chunkStoreMock) Replace(ctx context.Context, documentID uuid.UUID, chunks []domain.Chunk) error {
	if mock.ReplaceFunc == nil {
		panic("chunkStoreMock.ReplaceFunc: method is nil but chunkStore.Replace was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID uuid.UUID
		Chunks     []domain.Chunk
	}{Ctx: ctx, DocumentID: documentID, Chunks: chunks}
	mock.lockReplace.Lock()
	mock.calls.Replace = append(mock.calls.Replace, callInfo)
	mock.lockReplace.Unlock()
	return mock.ReplaceFunc(ctx, documentID, chunks)
}

func (mock *chunkStoreMock) ReplaceCalls() []struct {
	Ctx        context.Context
	DocumentID uuid.UUID
	Chunks     []domain.Chunk
} {
	mock.lockReplace.RLock()
	calls := mock.calls.Replace
	mock.lockReplace.RUnlock()
	return calls
}

func (mock *chunkStoreMock) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Chunk, error) {
	if mock.ListByDocumentFunc == nil {
		panic("chunkStoreMock.ListByDocumentFunc: method is nil but chunkStore.ListByDocument was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		DocumentID uuid.UUID
	}{Ctx: ctx, DocumentID: documentID}
	mock.lockListByDocument.Lock()
	mock.calls.ListByDocument = append(mock.calls.ListByDocument, callInfo)
	mock.lockListByDocument.Unlock()
	return mock.ListByDocumentFunc(ctx, documentID)
}

func (mock *chunkStoreMock) ListByDocumentCalls() []struct {
	Ctx        context.Context
	DocumentID uuid.UUID
} {
	mock.lockListByDocument.RLock()
	calls := mock.calls.ListByDocument
	mock.lockListByDocument.RUnlock()
	return calls
}

func (mock *chunkStoreMock) UpdateEmbedding(ctx context.Context, chunkID string, vector []float32) error {
	if mock.UpdateEmbeddingFunc == nil {
		panic("chunkStoreMock.UpdateEmbeddingFunc: method is nil but chunkStore.UpdateEmbedding was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ChunkID string
		Vector  []float32
	}{Ctx: ctx, ChunkID: chunkID, Vector: vector}
	mock.lockUpdateEmbedding.Lock()
	mock.calls.UpdateEmbedding = append(mock.calls.UpdateEmbedding, callInfo)
	mock.lockUpdateEmbedding.Unlock()
	return mock.UpdateEmbeddingFunc(ctx, chunkID, vector)
}

func (mock *chunkStoreMock) UpdateEmbeddingCalls() []struct {
	Ctx     context.Context
	ChunkID string
	Vector  []float32
} {
	mock.lockUpdateEmbedding.RLock()
	calls := mock.calls.UpdateEmbedding
	mock.lockUpdateEmbedding.RUnlock()
	return calls
}
