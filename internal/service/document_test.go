package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tutorapi/internal/extract"
	"tutorapi/internal/model"
	"tutorapi/internal/repository"
	repoMocks "tutorapi/internal/repository/mocks"
	"tutorapi/internal/storage"
	storeMocks "tutorapi/internal/storage/mocks"
)

func TestDocumentService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		originalFilename string
		contentType      string
		size             int64
		setupMocks       func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader
		wantErr          error
		wantErrMsg       string
	}{
		{
			name:             "happy path",
			originalFilename: "notes.txt",
			contentType:      "text/plain",
			size:             11,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello world")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasPrefix(key, "documents/") && strings.HasSuffix(key, ".txt")
				}), r, storage.PutObjectOptions{
					Size:        11,
					ContentType: "text/plain",
					Metadata:    map[string]string{"original-filename": "notes.txt"},
				}).Return(storage.ObjectInfo{
					Key:         "documents/uuid.txt",
					Size:        11,
					ContentType: "text/plain",
				}, nil)

				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Name == "notes.txt" &&
						doc.Type == model.TypeTXT &&
						doc.StoragePath == "documents/uuid.txt" &&
						!doc.Processed
				})).Return(&model.Document{ID: "gen-id"}, nil)

				return r
			},
		},
		{
			name:             "extension is case insensitive",
			originalFilename: "Lecture.PDF",
			size:             3,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("pdf")
				mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
					return strings.HasSuffix(key, ".pdf")
				}), r, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
					return opt.ContentType == "application/pdf"
				})).Return(storage.ObjectInfo{Key: "documents/uuid.pdf", Size: 3}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(doc *model.Document) bool {
					return doc.Type == model.TypePDF && doc.Name == "Lecture.PDF"
				})).Return(&model.Document{ID: "gen-id"}, nil)
				return r
			},
		},
		{
			name:             "validation error - nil reader",
			originalFilename: "test.txt",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				return nil
			},
			wantErr: ErrReaderNil,
		},
		{
			name:             "validation error - unsupported extension",
			originalFilename: "slides.pptx",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrUnsupportedType,
		},
		{
			name:             "validation error - no extension",
			originalFilename: "README",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrUnsupportedType,
		},
		{
			name:             "validation error - empty filename",
			originalFilename: "  ",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				return strings.NewReader("x")
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:             "storage error",
			originalFilename: "test.txt",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(storage.ObjectInfo{}, errors.New("storage fail"))
				return r
			},
			wantErrMsg: "upload to storage: storage fail",
		},
		{
			name:             "repository error with successful rollback",
			originalFilename: "test.csv",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("a,b\n")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(nil)
				return r
			},
			wantErrMsg: "db save failed: db fail",
		},
		{
			name:             "repository error with failed rollback",
			originalFilename: "test.docx",
			size:             5,
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository) io.Reader {
				r := strings.NewReader("hello")
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).
					Return(func(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) storage.ObjectInfo {
						return storage.ObjectInfo{Key: key}
					}, nil)
				mRepo.On("Create", ctx, mock.Anything).
					Return(nil, errors.New("db fail"))
				mStore.On("Delete", ctx, mock.Anything).Return(errors.New("delete fail"))
				return r
			},
			wantErrMsg: "rollback delete failed: delete fail",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(mStore, mRepo, new(repoMocks.MockTransactionManager), extract.NewRegistry())

			r := tt.setupMocks(mStore, mRepo)

			doc, err := svc.Upload(ctx, r, tt.originalFilename, tt.contentType, tt.size)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else if tt.wantErrMsg != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, doc)
			}

			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		limit      int
		offset     int
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    bool
		checkRes   func(t *testing.T, res *DocumentListResult)
	}{
		{
			name:   "happy path",
			limit:  10,
			offset: 0,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Document]{
						Items: []model.Document{{ID: "1"}, {ID: "2"}},
						Total: 2,
					}, nil)
			},
			checkRes: func(t *testing.T, res *DocumentListResult) {
				assert.Equal(t, 2, len(res.Items))
				assert.Equal(t, 2, res.Total)
			},
		},
		{
			name:   "pagination boundary - zero limit uses default",
			limit:  0,
			offset: -1,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 10, Offset: 0}).
					Return(&repository.PageResult[model.Document]{Items: []model.Document{}, Total: 0}, nil)
			},
		},
		{
			name:  "pagination boundary - limit capped",
			limit: 1000,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, repository.PageQuery{Limit: 100, Offset: 0}).
					Return(&repository.PageResult[model.Document]{Items: []model.Document{}, Total: 0}, nil)
			},
		},
		{
			name:  "repository error",
			limit: 10,
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("List", ctx, mock.Anything).Return(nil, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(nil, mRepo, nil, nil)

			tt.setupMocks(mRepo)

			res, err := svc.List(ctx, tt.limit, tt.offset)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.checkRes != nil {
					tt.checkRes(t, res)
				}
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockDocumentRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Document{ID: "valid-id"}, nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   "missing-id",
			setupMocks: func(mRepo *repoMocks.MockDocumentRepository) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockDocumentRepository)
			svc := NewDocumentService(nil, mRepo, nil, nil)

			tt.setupMocks(mRepo)

			doc, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, doc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, doc.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestDocumentService_Content(t *testing.T) {
	ctx := context.Background()

	t.Run("extracts text", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo, nil, extract.NewRegistry())

		mRepo.On("FindByID", ctx, "d1").Return(&model.Document{ID: "d1", Type: "txt", StoragePath: "documents/d1.txt"}, nil)
		mStore.On("Get", ctx, "documents/d1.txt").Return(io.NopCloser(strings.NewReader("A. B. C.")), storage.ObjectInfo{}, nil)

		got, err := svc.Content(ctx, "d1")
		assert.NoError(t, err)
		assert.Equal(t, "A. B. C.", got)
	})

	t.Run("stored file missing", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo, nil, extract.NewRegistry())

		mRepo.On("FindByID", ctx, "d1").Return(&model.Document{ID: "d1", Type: "txt", StoragePath: "documents/d1.txt"}, nil)
		mStore.On("Get", ctx, "documents/d1.txt").Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

		_, err := svc.Content(ctx, "d1")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("extractor failure is upstream", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		mRepo := new(repoMocks.MockDocumentRepository)
		svc := NewDocumentService(mStore, mRepo, nil, extract.NewRegistry())

		mRepo.On("FindByID", ctx, "d1").Return(&model.Document{ID: "d1", Type: "docx", StoragePath: "documents/d1.docx"}, nil)
		mStore.On("Get", ctx, "documents/d1.docx").Return(io.NopCloser(strings.NewReader("not a zip")), storage.ObjectInfo{}, nil)

		_, err := svc.Content(ctx, "d1")
		assert.ErrorIs(t, err, ErrUpstream)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTx *repoMocks.MockTransactionManager)
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "happy path",
			id:   "valid-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTx *repoMocks.MockTransactionManager) {
				mRepo.On("FindByID", ctx, "valid-id").Return(&model.Document{ID: "valid-id", StoragePath: "path/to/obj"}, nil)
				mStore.On("Delete", ctx, "path/to/obj").Return(nil)
				mTx.On("ExecTx", ctx, mock.Anything).Return(nil)
				mRepo.On("Delete", ctx, "valid-id").Return(nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(*storeMocks.MockStorage, *repoMocks.MockDocumentRepository, *repoMocks.MockTransactionManager) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTx *repoMocks.MockTransactionManager) {
				mRepo.On("FindByID", ctx, "missing-id").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage delete error keeps the row",
			id:   "storage-fail-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTx *repoMocks.MockTransactionManager) {
				mRepo.On("FindByID", ctx, "storage-fail-id").Return(&model.Document{ID: "id", StoragePath: "path"}, nil)
				mStore.On("Delete", ctx, "path").Return(errors.New("storage fail"))
			},
			wantErrMsg: "delete storage: storage fail",
		},
		{
			name: "repository delete error",
			id:   "repo-fail-id",
			setupMocks: func(mStore *storeMocks.MockStorage, mRepo *repoMocks.MockDocumentRepository, mTx *repoMocks.MockTransactionManager) {
				mRepo.On("FindByID", ctx, "repo-fail-id").Return(&model.Document{ID: "id", StoragePath: "path"}, nil)
				mStore.On("Delete", ctx, "path").Return(nil)
				mTx.On("ExecTx", ctx, mock.Anything).Return(nil)
				mRepo.On("Delete", ctx, "repo-fail-id").Return(errors.New("db fail"))
			},
			wantErr: ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mStore := new(storeMocks.MockStorage)
			mRepo := new(repoMocks.MockDocumentRepository)
			mTx := new(repoMocks.MockTransactionManager)
			svc := NewDocumentService(mStore, mRepo, mTx, nil)

			tt.setupMocks(mStore, mRepo, mTx)

			err := svc.Delete(ctx, tt.id)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				assert.NoError(t, err)
			}
			mStore.AssertExpectations(t)
			mRepo.AssertExpectations(t)
			mTx.AssertExpectations(t)
		})
	}
}
