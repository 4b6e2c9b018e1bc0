package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bookcatalog/internal/fault"
	"bookcatalog/internal/pagination"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Search(ctx context.Context, q string, req pagination.Request) (pagination.Page[Book], error) {
	args := m.Called(ctx, q, req)
	return args.Get(0).(pagination.Page[Book]), args.Error(1)
}

func (m *mockRepo) FindByID(ctx context.Context, id int64) (Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepo) Add(ctx context.Context, title, author string, pubYear int) (Book, error) {
	args := m.Called(ctx, title, author, pubYear)
	return args.Get(0).(Book), args.Error(1)
}

func (m *mockRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func TestService_Add_Validation(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		author  string
		pubYear int
	}{
		{"blank title", "", "George Orwell", 1949},
		{"whitespace title", "   ", "George Orwell", 1949},
		{"blank author", "1984", "", 1949},
		{"whitespace author", "1984", "\t ", 1949},
		{"zero pub year", "1984", "George Orwell", 0},
		{"negative pub year", "1984", "George Orwell", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			svc := NewService(repo)

			_, err := svc.Add(context.Background(), tt.title, tt.author, tt.pubYear)

			assert.True(t, fault.IsInvalid(err), "expected invalid argument, got %v", err)
			repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Add_TrimsAndPersists(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Add", mock.Anything, "1984", "George Orwell", 1949).
		Return(Book{ID: 7, Title: "1984", Author: "George Orwell", PubYear: 1949}, nil)
	svc := NewService(repo)

	book, err := svc.Add(context.Background(), "  1984  ", " George Orwell ", 1949)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), book.ID)
	repo.AssertExpectations(t)
}

func TestService_Add_StorageFailure(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Add", mock.Anything, "1984", "George Orwell", 1949).
		Return(Book{}, fault.Storage(errors.New("connection refused")))
	svc := NewService(repo)

	_, err := svc.Add(context.Background(), "1984", "George Orwell", 1949)

	assert.True(t, fault.IsStorage(err))
}

func TestService_Search_NormalizesRequest(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Search", mock.Anything, "orwell", pagination.Request{Page: 0, Size: pagination.DefaultSize}).
		Return(pagination.Page[Book]{Items: nil, Total: 0}, nil)
	svc := NewService(repo)

	_, err := svc.Search(context.Background(), "orwell", pagination.Request{Page: -1, Size: 10000})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_FindByID_PassesThroughNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("FindByID", mock.Anything, int64(42)).Return(Book{}, fault.NotFound("book not found"))
	svc := NewService(repo)

	_, err := svc.FindByID(context.Background(), 42)

	assert.True(t, fault.IsNotFound(err))
}
