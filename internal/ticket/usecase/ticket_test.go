package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"sync"
	"testing"

	"ticketdesk/internal/model"
	"ticketdesk/internal/ticket"
	"ticketdesk/internal/ticket/repository"
	"ticketdesk/pkg/paginator"
	"ticketdesk/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger implements log.Logger for testing.
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

// fakeRepository is an in-memory repository.Repository.
type fakeRepository struct {
	mu          sync.Mutex
	seq         int
	tickets     map[string]model.Ticket
	comments    map[string][]model.Comment
	attachments map[string]model.Attachment

	createAttachmentErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		tickets:     map[string]model.Ticket{},
		comments:    map[string][]model.Comment{},
		attachments: map[string]model.Attachment{},
	}
}

func (f *fakeRepository) nextID() string {
	f.seq++
	return "00000000-0000-0000-0000-00000000000" + strconv.Itoa(f.seq)
}

func (f *fakeRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := opts.Ticket
	if t.ID == "" {
		t.ID = f.nextID()
	}
	f.tickets[t.ID] = t
	return t, nil
}

func (f *fakeRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[id]
	if !ok {
		return model.Ticket{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Ticket, paginator.Paginator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []model.Ticket
	for _, t := range f.tickets {
		if opts.Filter.UserID != "" && t.UserID != opts.Filter.UserID {
			continue
		}
		if opts.Filter.Status != "" && string(t.Status) != opts.Filter.Status {
			continue
		}
		res = append(res, t)
	}
	return res, paginator.New(opts.PaginateQuery, int64(len(res))), nil
}

func (f *fakeRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[opts.ID]
	if !ok {
		return model.Ticket{}, repository.ErrNotFound
	}
	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Description != nil {
		t.Description = *opts.Description
	}
	if opts.Status != nil {
		t.Status = *opts.Status
	}
	f.tickets[opts.ID] = t
	return t, nil
}

func (f *fakeRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tickets[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tickets, id)
	return nil
}

func (f *fakeRepository) CreateComment(ctx context.Context, sc model.Scope, opts repository.CreateCommentOptions) (model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cm := opts.Comment
	if cm.ID == "" {
		cm.ID = f.nextID()
	}
	f.comments[cm.TicketID] = append(f.comments[cm.TicketID], cm)
	return cm, nil
}

func (f *fakeRepository) ListComments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.comments[ticketID], nil
}

func (f *fakeRepository) CreateAttachment(ctx context.Context, sc model.Scope, opts repository.CreateAttachmentOptions) (model.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createAttachmentErr != nil {
		return model.Attachment{}, f.createAttachmentErr
	}
	at := opts.Attachment
	if at.ID == "" {
		at.ID = f.nextID()
	}
	f.attachments[at.ID] = at
	return at, nil
}

func (f *fakeRepository) ListAttachments(ctx context.Context, sc model.Scope, ticketID string) ([]model.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var res []model.Attachment
	for _, at := range f.attachments {
		if at.TicketID == ticketID {
			res = append(res, at)
		}
	}
	return res, nil
}

func (f *fakeRepository) DetailAttachment(ctx context.Context, sc model.Scope, id string) (model.Attachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	at, ok := f.attachments[id]
	if !ok {
		return model.Attachment{}, repository.ErrNotFound
	}
	return at, nil
}

func (f *fakeRepository) DeleteAttachment(ctx context.Context, sc model.Scope, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.attachments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.attachments, id)
	return nil
}

// fakeStorage is an in-memory storage.Storage.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeStorage) Upload(ctx context.Context, input storage.UploadInput) (storage.ObjectInfo, error) {
	data, err := io.ReadAll(input.Reader)
	if err != nil {
		return storage.ObjectInfo{}, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[input.ObjectName] = data
	return storage.ObjectInfo{
		ObjectName:   input.ObjectName,
		OriginalName: input.OriginalName,
		ContentType:  input.ContentType,
		Size:         int64(len(data)),
	}, nil
}

func (f *fakeStorage) Download(ctx context.Context, objectName string) (io.ReadCloser, storage.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[objectName]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), storage.ObjectInfo{ObjectName: objectName, Size: int64(len(data))}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, objectName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, objectName)
	f.deleted = append(f.deleted, objectName)
	return nil
}

// fakeNotifier records events; notified signals each delivery.
type fakeNotifier struct {
	mu       sync.Mutex
	events   []ticket.NotifyInput
	err      error
	notified chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan struct{}, 16)}
}

func (f *fakeNotifier) Notify(ctx context.Context, ip ticket.NotifyInput) error {
	f.mu.Lock()
	f.events = append(f.events, ip)
	f.mu.Unlock()
	f.notified <- struct{}{}
	return f.err
}

func (f *fakeNotifier) all() []ticket.NotifyInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ticket.NotifyInput(nil), f.events...)
}

func newTestUseCase(t *testing.T) (ticket.UseCase, *fakeRepository, *fakeStorage, *fakeNotifier) {
	t.Helper()
	repo := newFakeRepository()
	store := newFakeStorage()
	notifier := newFakeNotifier()
	return New(&testLogger{}, repo, store, notifier), repo, store, notifier
}

var (
	scOwner = model.Scope{UserID: "11111111-1111-1111-1111-111111111111", Role: model.RoleUser}
	scOther = model.Scope{UserID: "22222222-2222-2222-2222-222222222222", Role: model.RoleUser}
	scAgent = model.Scope{UserID: "33333333-3333-3333-3333-333333333333", Role: model.RoleAgent}
)

func TestCreateDefaultsToOpen(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	created, err := uc.Create(context.Background(), scOwner, ticket.CreateInput{
		Title:       "printer on fire",
		Description: "again",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusOpen, created.Status)
	assert.Equal(t, scOwner.UserID, created.UserID)
}

func TestCreateValidation(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, scOwner, ticket.CreateInput{Description: "d"})
	assert.ErrorIs(t, err, ticket.ErrTitleRequired)

	_, err = uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t"})
	assert.ErrorIs(t, err, ticket.ErrDescriptionRequired)
}

func TestGetScopesRegularUsersToOwnTickets(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "mine", Description: "d"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, scOther, ticket.CreateInput{Title: "theirs", Description: "d"})
	require.NoError(t, err)

	out, err := uc.Get(ctx, scOwner, ticket.GetInput{})
	require.NoError(t, err)
	require.Len(t, out.Tickets, 1)
	assert.Equal(t, "mine", out.Tickets[0].Title)

	// Staff see everything.
	out, err = uc.Get(ctx, scAgent, ticket.GetInput{})
	require.NoError(t, err)
	assert.Len(t, out.Tickets, 2)
}

func TestGetRejectsInvalidStatusFilter(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.Get(context.Background(), scOwner, ticket.GetInput{
		Filter: ticket.Filter{Status: "resolved"},
	})
	assert.ErrorIs(t, err, ticket.ErrInvalidStatus)
}

func TestUpdateNotifiesOwner(t *testing.T) {
	uc, _, _, notifier := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "vpn down", Description: "d"})
	require.NoError(t, err)

	status := model.StatusInProgress
	updated, err := uc.Update(ctx, scAgent, ticket.UpdateInput{ID: created.ID, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	<-notifier.notified
	events := notifier.all()
	require.Len(t, events, 1)
	assert.Equal(t, scOwner.UserID, events[0].UserID)
	assert.Equal(t, created.ID, events[0].TicketID)
	assert.Equal(t, model.NotificationTypeTicketUpdate, events[0].NotificationType)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	bad := model.TicketStatus("reopened")
	_, err := uc.Update(context.Background(), scAgent, ticket.UpdateInput{ID: "x", Status: &bad})
	assert.ErrorIs(t, err, ticket.ErrInvalidStatus)
}

func TestUpdateForbiddenForStrangers(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	title := "hijacked"
	_, err = uc.Update(ctx, scOther, ticket.UpdateInput{ID: created.ID, Title: &title})
	assert.ErrorIs(t, err, ticket.ErrForbidden)
}

func TestNotifierFailureDoesNotFailUpdate(t *testing.T) {
	uc, _, _, notifier := newTestUseCase(t)
	notifier.err = errors.New("notification service down")
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	status := model.StatusClosed
	_, err = uc.Update(ctx, scOwner, ticket.UpdateInput{ID: created.ID, Status: &status})
	require.NoError(t, err)
	<-notifier.notified
}

func TestAddCommentNotifiesOwnerOnly(t *testing.T) {
	uc, _, _, notifier := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	// Owner commenting on their own ticket produces no notification.
	_, err = uc.AddComment(ctx, scOwner, ticket.AddCommentInput{TicketID: created.ID, Content: "me again"})
	require.NoError(t, err)

	_, err = uc.AddComment(ctx, scAgent, ticket.AddCommentInput{TicketID: created.ID, Content: "on it"})
	require.NoError(t, err)

	<-notifier.notified
	events := notifier.all()
	require.Len(t, events, 1)
	assert.Equal(t, scOwner.UserID, events[0].UserID)
	assert.Equal(t, model.NotificationTypeComment, events[0].NotificationType)

	comments, err := uc.ListComments(ctx, scOwner, created.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestAddCommentValidation(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.AddComment(context.Background(), scOwner, ticket.AddCommentInput{TicketID: "x"})
	assert.ErrorIs(t, err, ticket.ErrContentRequired)
}

func TestDetailBundlesCommentsAndAttachments(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	_, err = uc.AddComment(ctx, scOwner, ticket.AddCommentInput{TicketID: created.ID, Content: "hello"})
	require.NoError(t, err)

	_, err = uc.UploadAttachment(ctx, scOwner, ticket.UploadAttachmentInput{
		TicketID: created.ID,
		FileName: "log.txt",
		Reader:   bytes.NewReader([]byte("boom")),
	})
	require.NoError(t, err)

	out, err := uc.Detail(ctx, scOwner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.Ticket.ID)
	assert.Len(t, out.Comments, 1)
	assert.Len(t, out.Attachments, 1)
}

func TestDetailNotFound(t *testing.T) {
	uc, _, _, _ := newTestUseCase(t)

	_, err := uc.Detail(context.Background(), scOwner, "99999999-9999-9999-9999-999999999999")
	assert.ErrorIs(t, err, ticket.ErrNotFound)
}

func TestUploadAttachmentRoundTrip(t *testing.T) {
	uc, _, store, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	at, err := uc.UploadAttachment(ctx, scOwner, ticket.UploadAttachmentInput{
		TicketID:    created.ID,
		FileName:    "screenshot.png",
		ContentType: "image/png",
		Size:        4,
		Reader:      bytes.NewReader([]byte{1, 2, 3, 4}),
	})
	require.NoError(t, err)
	assert.Equal(t, "screenshot.png", at.FileName)
	assert.NotEmpty(t, at.ObjectName)

	got, body, err := uc.DownloadAttachment(ctx, scOwner, ticket.AttachmentInput{
		TicketID:     created.ID,
		AttachmentID: at.ID,
	})
	require.NoError(t, err)
	defer body.Close()
	assert.Equal(t, at.ID, got.ID)

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, data)

	require.NoError(t, uc.DeleteAttachment(ctx, scOwner, ticket.AttachmentInput{
		TicketID:     created.ID,
		AttachmentID: at.ID,
	}))
	assert.Contains(t, store.deleted, at.ObjectName)
}

func TestUploadAttachmentCleansUpOnRecordFailure(t *testing.T) {
	uc, repo, store, _ := newTestUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, scOwner, ticket.CreateInput{Title: "t", Description: "d"})
	require.NoError(t, err)

	repo.createAttachmentErr = errors.New("db down")
	_, err = uc.UploadAttachment(ctx, scOwner, ticket.UploadAttachmentInput{
		TicketID: created.ID,
		FileName: "log.txt",
		Reader:   bytes.NewReader([]byte("boom")),
	})
	require.Error(t, err)
	assert.Len(t, store.deleted, 1)
	assert.Empty(t, store.objects)
}
